package utils

import (
	"regexp"
)

// #nosec G101 -- False positive - no hardcoded credentials.
const CredentialsInUrlRegexp = `(https?|git)://[^/@\s]+@`

var credentialsInUrl = regexp.MustCompile(CredentialsInUrlRegexp)

// MaskCredentials replaces the user information of every URL in line with '***'.
func MaskCredentials(line string) string {
	return credentialsInUrl.ReplaceAllString(line, "$1://***@")
}
