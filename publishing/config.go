package publishing

// PublishingConfig is the root of the publishing configuration.
// It is populated once during configuration and read by the deployment, P2 and signing steps afterwards.
// It is not safe for concurrent use.
type PublishingConfig struct {
	version                string
	branch                 string
	uploadRepository       *UploadRepository
	createSignatures       bool
	signJars               bool
	packJars               bool
	failOnInconsistentJars bool
	projects               []*Project
	p2Repositories         []*P2Repository
	userMavenSettings      string
	globalMavenSettings    string
	mavenSecurityFile      string
}

func NewPublishingConfig(env Environment) *PublishingConfig {
	return &PublishingConfig{
		branch:              DefaultBranch,
		uploadRepository:    NewUploadRepository(),
		createSignatures:    true,
		userMavenSettings:   env.UserMavenSettings(),
		globalMavenSettings: env.GlobalMavenSettings(),
		mavenSecurityFile:   env.MavenSecurityFile(),
	}
}

func (config *PublishingConfig) SetVersion(version string) {
	config.version = version
}

func (config *PublishingConfig) Version() string {
	return config.version
}

// BaseVersion derives the release version from the configured version.
// It fails with ErrVersionNotConfigured if no version was set, and with a MalformedVersionError
// if the version has nothing that could be stripped.
func (config *PublishingConfig) BaseVersion() (string, error) {
	return BaseVersion(config.version)
}

func (config *PublishingConfig) IsSnapshot() bool {
	return IsSnapshot(config.version)
}

// DeployUrl returns the upload repository URL matching the configured version.
func (config *PublishingConfig) DeployUrl() string {
	return config.uploadRepository.UrlFor(config.version)
}

func (config *PublishingConfig) SetBranch(branch string) {
	config.branch = branch
}

func (config *PublishingConfig) Branch() string {
	return config.branch
}

// MavenUploadRepository replaces the upload repository with a new one configured by configure.
func (config *PublishingConfig) MavenUploadRepository(configure func(*UploadRepository)) *UploadRepository {
	repo := NewUploadRepository()
	if configure != nil {
		configure(repo)
	}
	config.uploadRepository = repo
	return repo
}

func (config *PublishingConfig) MavenUploadRepositoryNamed(name string) *UploadRepository {
	return config.MavenUploadRepository(func(repo *UploadRepository) {
		repo.SetName(name)
	})
}

func (config *PublishingConfig) UploadRepository() *UploadRepository {
	return config.uploadRepository
}

// AddProject creates a project, applies configure to it and appends it to the configured projects.
func (config *PublishingConfig) AddProject(configure func(*Project)) *Project {
	project := &Project{}
	if configure != nil {
		configure(project)
	}
	config.projects = append(config.projects, project)
	return project
}

func (config *PublishingConfig) Projects() []*Project {
	return config.projects
}

// AddP2Repository creates a P2 repository, applies configure to it and appends it to the configured repositories.
func (config *PublishingConfig) AddP2Repository(configure func(*P2Repository)) *P2Repository {
	repo := &P2Repository{}
	if configure != nil {
		configure(repo)
	}
	config.p2Repositories = append(config.p2Repositories, repo)
	return repo
}

func (config *PublishingConfig) P2Repositories() []*P2Repository {
	return config.p2Repositories
}

func (config *PublishingConfig) SetUserMavenSettings(path string) {
	config.userMavenSettings = path
}

func (config *PublishingConfig) SetGlobalMavenSettings(path string) {
	config.globalMavenSettings = path
}

func (config *PublishingConfig) SetMavenSecurityFile(path string) {
	config.mavenSecurityFile = path
}

func (config *PublishingConfig) UserMavenSettings() string {
	return config.userMavenSettings
}

func (config *PublishingConfig) GlobalMavenSettings() string {
	return config.globalMavenSettings
}

func (config *PublishingConfig) MavenSecurityFile() string {
	return config.mavenSecurityFile
}
