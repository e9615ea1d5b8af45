package publishing

// UploadRepository is the remote Maven endpoint pair that releases and snapshots are deployed to.
type UploadRepository struct {
	name        string
	stagingUrl  string
	snapshotUrl string
}

// NewUploadRepository returns a repository pointing at the Sonatype OSS endpoints.
func NewUploadRepository() *UploadRepository {
	return &UploadRepository{
		name:        DefaultRepoName,
		stagingUrl:  DefaultStagingUrl,
		snapshotUrl: DefaultSnapshotUrl,
	}
}

func (repo *UploadRepository) SetName(name string) {
	repo.name = name
}

func (repo *UploadRepository) SetStagingUrl(url string) {
	repo.stagingUrl = url
}

func (repo *UploadRepository) SetSnapshotUrl(url string) {
	repo.snapshotUrl = url
}

func (repo *UploadRepository) Name() string {
	return repo.name
}

func (repo *UploadRepository) StagingUrl() string {
	return repo.stagingUrl
}

func (repo *UploadRepository) SnapshotUrl() string {
	return repo.snapshotUrl
}

// UrlFor returns the snapshot URL for snapshot versions and the staging URL for anything else.
func (repo *UploadRepository) UrlFor(version string) string {
	if IsSnapshot(version) {
		return repo.snapshotUrl
	}
	return repo.stagingUrl
}
