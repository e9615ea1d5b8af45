package publishing

import (
	"os"
	"path/filepath"
)

const (
	MavenHome = "M2_HOME"

	DefaultBranch      = "master"
	DefaultStagingUrl  = "https://oss.sonatype.org/service/local/staging/deploy/maven2/"
	DefaultSnapshotUrl = "https://oss.sonatype.org/content/repositories/snapshots/"
	DefaultRepoName    = "Maven"
)

// Environment holds the machine-specific locations the settings file defaults are derived from.
type Environment struct {
	// The user home directory.
	HomeDir string
	// The Maven installation directory, usually the value of M2_HOME.
	MavenHome string
}

// DefaultEnvironment reads the user home directory and M2_HOME from the running process.
// A home directory that cannot be resolved is left empty.
func DefaultEnvironment() Environment {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return Environment{
		HomeDir:   home,
		MavenHome: os.Getenv(MavenHome),
	}
}

func (env Environment) UserMavenSettings() string {
	return filepath.Join(env.HomeDir, ".m2", "settings.xml")
}

// GlobalMavenSettings resolves conf/settings.xml under the Maven home.
// Without a Maven home the path stays relative.
func (env Environment) GlobalMavenSettings() string {
	return filepath.Join(env.MavenHome, "conf", "settings.xml")
}

func (env Environment) MavenSecurityFile() string {
	return filepath.Join(env.HomeDir, ".m2", "settings-security.xml")
}
