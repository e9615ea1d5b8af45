package utils

import (
	"fmt"
)

// MissingFileError reports a configured file that could not be found on disk.
type MissingFileError struct {
	Kind string
	Path string
}

func (err *MissingFileError) Error() string {
	return fmt.Sprintf("%s file '%s' does not exist", err.Kind, err.Path)
}

// CheckFileExists returns a MissingFileError if path does not point at a regular file.
func CheckFileExists(kind, path string) error {
	exists, err := IsFileExists(path, true)
	if err != nil {
		return err
	}
	if !exists {
		return &MissingFileError{Kind: kind, Path: path}
	}
	return nil
}
