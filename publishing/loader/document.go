package loader

// document mirrors the configuration file layout. Flags are untyped so that both
// booleans and strings are accepted.
type document struct {
	Version                string               `toml:"version" json:"version"`
	Branch                 string               `toml:"branch" json:"branch"`
	CreateSignatures       interface{}          `toml:"createSignatures" json:"createSignatures"`
	SignJars               interface{}          `toml:"signJars" json:"signJars"`
	PackJars               interface{}          `toml:"packJars" json:"packJars"`
	FailOnInconsistentJars interface{}          `toml:"failOnInconsistentJars" json:"failOnInconsistentJars"`
	UserMavenSettings      string               `toml:"userMavenSettings" json:"userMavenSettings"`
	GlobalMavenSettings    string               `toml:"globalMavenSettings" json:"globalMavenSettings"`
	MavenSecurityFile      string               `toml:"mavenSecurityFile" json:"mavenSecurityFile"`
	MavenUploadRepository  *uploadRepositoryDoc `toml:"mavenUploadRepository" json:"mavenUploadRepository"`
	Projects               []projectDoc         `toml:"project" json:"projects"`
	P2Repositories         []p2RepositoryDoc    `toml:"p2Repository" json:"p2Repositories"`
}

type uploadRepositoryDoc struct {
	Name        string `toml:"name" json:"name"`
	StagingUrl  string `toml:"stagingUrl" json:"stagingUrl"`
	SnapshotUrl string `toml:"snapshotUrl" json:"snapshotUrl"`
}

type projectDoc struct {
	Name      string        `toml:"name" json:"name"`
	Group     string        `toml:"group" json:"group"`
	Artifacts []artifactDoc `toml:"artifact" json:"artifacts"`
}

type artifactDoc struct {
	Name               string   `toml:"name" json:"name"`
	Group              string   `toml:"group" json:"group"`
	ExcludeClassifiers []string `toml:"excludeClassifiers" json:"excludeClassifiers"`
	ExcludeExtensions  []string `toml:"excludeExtensions" json:"excludeExtensions"`
}

type p2RepositoryDoc struct {
	Name                string   `toml:"name" json:"name"`
	Group               string   `toml:"group" json:"group"`
	Url                 string   `toml:"url" json:"url"`
	DeployPath          string   `toml:"deployPath" json:"deployPath"`
	ReferenceFeature    string   `toml:"referenceFeature" json:"referenceFeature"`
	Namespaces          []string `toml:"namespaces" json:"namespaces"`
	AcceptDifferingJars []string `toml:"acceptDifferingJars" json:"acceptDifferingJars"`
}
