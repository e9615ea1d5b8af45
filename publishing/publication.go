package publishing

import (
	"github.com/jfrog/publish-info-go/entities"
)

// Publication converts the finished configuration into the descriptor read by the publishing steps.
func (config *PublishingConfig) Publication() (*entities.Publication, error) {
	baseVersion, err := config.BaseVersion()
	if err != nil {
		return nil, err
	}
	repo := config.uploadRepository
	publication := &entities.Publication{
		Version:     config.version,
		BaseVersion: baseVersion,
		Branch:      config.branch,
		Snapshot:    config.IsSnapshot(),
		Repository: entities.UploadTarget{
			Name:        repo.Name(),
			StagingUrl:  repo.StagingUrl(),
			SnapshotUrl: repo.SnapshotUrl(),
			DeployUrl:   config.DeployUrl(),
		},
		Signing: entities.Signing{
			CreateSignatures:       config.createSignatures,
			SignJars:               config.signJars,
			PackJars:               config.packJars,
			FailOnInconsistentJars: config.failOnInconsistentJars,
		},
		Settings: entities.MavenSettings{
			UserSettings:   config.userMavenSettings,
			GlobalSettings: config.globalMavenSettings,
			SecurityFile:   config.mavenSecurityFile,
		},
	}
	for _, project := range config.projects {
		for _, artifact := range project.artifacts {
			publication.Modules = append(publication.Modules, entities.MavenModule{
				Id:                  artifact.Coordinates(config.version),
				Project:             project.name,
				GroupId:             artifact.Group(),
				ArtifactId:          artifact.name,
				Version:             config.version,
				ExcludedClassifiers: artifact.ExcludedClassifiers(),
				ExcludedExtensions:  artifact.ExcludedExtensions(),
			})
		}
	}
	for _, repo := range config.p2Repositories {
		publication.P2Repositories = append(publication.P2Repositories, entities.P2Target{
			Name:                  repo.name,
			Group:                 repo.group,
			Url:                   repo.url,
			DeployPath:            repo.deployPath,
			ReferenceFeature:      repo.referenceFeature,
			Namespaces:            repo.namespaces,
			AcceptedDifferingJars: repo.acceptedDifferingJars,
		})
	}
	return publication, nil
}
