package publishing

import (
	"strings"

	"github.com/jfrog/publish-info-go/utils"
)

// Artifact is a single publishable Maven unit, normally created through Project.AddArtifact.
// A zero Artifact has no project and therefore no inherited group.
type Artifact struct {
	// The owning project. The project owns the artifact, not the other way around.
	project             *Project
	name                string
	group               string
	excludedClassifiers utils.StringSet
	excludedExtensions  utils.StringSet
}

func (artifact *Artifact) SetName(name string) {
	artifact.name = name
}

// SetGroup overrides the group inherited from the project.
func (artifact *Artifact) SetGroup(group string) {
	artifact.group = group
}

func (artifact *Artifact) ExcludeClassifier(classifiers ...string) {
	artifact.excludedClassifiers.AddAll(classifiers...)
}

func (artifact *Artifact) ExcludeExtension(extensions ...string) {
	artifact.excludedExtensions.AddAll(extensions...)
}

func (artifact *Artifact) Name() string {
	return artifact.name
}

// Group returns the artifact's own group, or the project's group if none was set.
// An empty result means neither level defines a group.
func (artifact *Artifact) Group() string {
	if artifact.group != "" || artifact.project == nil {
		return artifact.group
	}
	return artifact.project.Group()
}

func (artifact *Artifact) Project() *Project {
	return artifact.project
}

// ExcludedClassifiers returns the excluded classifiers in ascending order.
func (artifact *Artifact) ExcludedClassifiers() []string {
	return artifact.excludedClassifiers.ToSlice()
}

// ExcludedExtensions returns the excluded extensions in ascending order.
func (artifact *Artifact) ExcludedExtensions() []string {
	return artifact.excludedExtensions.ToSlice()
}

// IsExcluded reports whether a file with the given classifier and extension must be skipped.
// An empty classifier denotes the main file.
func (artifact *Artifact) IsExcluded(classifier, extension string) bool {
	if classifier != "" && artifact.excludedClassifiers.Contains(classifier) {
		return true
	}
	return artifact.excludedExtensions.Contains(strings.TrimPrefix(extension, "."))
}

// Coordinates returns the Maven coordinates of the artifact in the form group:name:version.
func (artifact *Artifact) Coordinates(version string) string {
	return strings.Join([]string{artifact.Group(), artifact.name, version}, ":")
}
