package publishing

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const SnapshotSuffix = "-SNAPSHOT"

// ErrVersionNotConfigured is returned when a version-derived value is requested before a version was set.
var ErrVersionNotConfigured = errors.New("the publishing version is not configured")

// MalformedVersionError is returned for a version that has neither a snapshot suffix nor a qualifier segment to drop.
type MalformedVersionError struct {
	Version string
}

func (err *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version '%s': expected a '%s' suffix or at least two dot-separated segments", err.Version, SnapshotSuffix)
}

// BaseVersion strips the snapshot suffix or the trailing qualifier segment from version.
//
//	1.2.3-SNAPSHOT   -> 1.2.3
//	1.2.3            -> 1.2.3
//	1.2.3.v20200101  -> 1.2.3
//	1.2.3.4.5        -> 1.2.3.4
func BaseVersion(version string) (string, error) {
	if version == "" {
		return "", errors.WithStack(ErrVersionNotConfigured)
	}
	if strings.HasSuffix(version, SnapshotSuffix) {
		return strings.TrimSuffix(version, SnapshotSuffix), nil
	}
	switch segments := countSegments(version); {
	case segments == 3:
		return version, nil
	case segments < 2:
		return "", &MalformedVersionError{Version: version}
	}
	return version[:strings.LastIndex(version, ".")], nil
}

func IsSnapshot(version string) bool {
	return strings.HasSuffix(version, SnapshotSuffix)
}

// countSegments counts dot-separated segments, ignoring trailing empty segments.
func countSegments(version string) int {
	segments := strings.Split(version, ".")
	for len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return len(segments)
}
