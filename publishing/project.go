package publishing

// Project is a named group of artifacts sharing a default Maven group.
type Project struct {
	name      string
	group     string
	artifacts []*Artifact
}

func (project *Project) SetName(name string) {
	project.name = name
}

func (project *Project) SetGroup(group string) {
	project.group = group
}

func (project *Project) Name() string {
	return project.name
}

func (project *Project) Group() string {
	return project.group
}

func (project *Project) Artifacts() []*Artifact {
	return project.artifacts
}

// AddArtifact creates an artifact owned by this project, applies configure to it and registers it.
func (project *Project) AddArtifact(configure func(*Artifact)) *Artifact {
	artifact := &Artifact{project: project}
	if configure != nil {
		configure(artifact)
	}
	project.artifacts = append(project.artifacts, artifact)
	return artifact
}

func (project *Project) AddArtifactNamed(name string) *Artifact {
	return project.AddArtifact(func(artifact *Artifact) {
		artifact.SetName(name)
	})
}
