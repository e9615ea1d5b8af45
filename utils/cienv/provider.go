// Package cienv detects the CI system the publisher runs in and reads the branch
// being built from its environment variables.
//
// Providers register themselves in init(). CI detection requires CI=true plus the
// provider-specific variables, so at most one provider is active at a time.
package cienv

import "os"

const (
	// CIEnvVar is the standard environment variable set by most CI systems
	CIEnvVar = "CI"
)

// CIVcsInfo is the VCS state reported by the active CI provider.
type CIVcsInfo struct {
	// Provider is the CI provider name (e.g., "github", "gitlab")
	Provider string
	// Branch is the branch being built. For pull and merge requests it is the source branch.
	Branch string
	// Revision is the commit SHA
	Revision string
}

// IsEmpty returns true if no VCS info was detected
func (v CIVcsInfo) IsEmpty() bool {
	return v.Provider == "" && v.Branch == ""
}

type CIProvider interface {
	// Name returns the unique identifier for this CI provider
	Name() string

	// IsActive returns true if currently running in this CI environment.
	IsActive() bool

	// GetVcsInfo extracts VCS information from CI environment variables
	GetVcsInfo() CIVcsInfo
}

// Registration happens in init() only; the slice is read-only afterwards.
var providers []CIProvider

// RegisterProvider adds a CI provider to the registry.
// Must be called from init() functions only.
func RegisterProvider(p CIProvider) {
	providers = append(providers, p)
}

// GetActiveProvider returns the active CI provider, or nil if not running in any
// supported CI environment.
func GetActiveProvider() CIProvider {
	if os.Getenv(CIEnvVar) != "true" {
		return nil
	}
	for _, p := range providers {
		if p.IsActive() {
			return p
		}
	}
	return nil
}

// GetCIVcsInfo returns VCS information from the active CI provider.
// Returns empty CIVcsInfo if no CI environment is detected.
func GetCIVcsInfo() CIVcsInfo {
	provider := GetActiveProvider()
	if provider == nil {
		return CIVcsInfo{}
	}
	return provider.GetVcsInfo()
}
