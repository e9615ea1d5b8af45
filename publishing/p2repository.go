package publishing

import (
	"github.com/jfrog/gofrog/stringutils"
	"github.com/pkg/errors"
)

// P2Repository describes an OSGi/P2 repository that bundles and features are published to.
type P2Repository struct {
	name                  string
	group                 string
	url                   string
	deployPath            string
	referenceFeature      string
	namespaces            []string
	acceptedDifferingJars []string
}

func (repo *P2Repository) SetName(name string) {
	repo.name = name
}

func (repo *P2Repository) SetGroup(group string) {
	repo.group = group
}

func (repo *P2Repository) SetUrl(url string) {
	repo.url = url
}

func (repo *P2Repository) SetDeployPath(deployPath string) {
	repo.deployPath = deployPath
}

func (repo *P2Repository) SetReferenceFeature(feature string) {
	repo.referenceFeature = feature
}

// AddNamespace appends a namespace. Duplicates are kept.
func (repo *P2Repository) AddNamespace(namespace string) {
	repo.namespaces = append(repo.namespaces, namespace)
}

// AcceptDifferingJars appends a jar name pattern whose content may differ from the reference build.
func (repo *P2Repository) AcceptDifferingJars(pattern string) {
	repo.acceptedDifferingJars = append(repo.acceptedDifferingJars, pattern)
}

func (repo *P2Repository) Name() string {
	return repo.name
}

func (repo *P2Repository) Group() string {
	return repo.group
}

func (repo *P2Repository) Url() string {
	return repo.url
}

func (repo *P2Repository) DeployPath() string {
	return repo.deployPath
}

func (repo *P2Repository) ReferenceFeature() string {
	return repo.referenceFeature
}

func (repo *P2Repository) Namespaces() []string {
	return repo.namespaces
}

func (repo *P2Repository) AcceptedDifferingJars() []string {
	return repo.acceptedDifferingJars
}

// AcceptsDifferingJar reports whether jarName matches one of the accepted patterns.
// Patterns support the '*' wildcard.
func (repo *P2Repository) AcceptsDifferingJar(jarName string) (bool, error) {
	for _, pattern := range repo.acceptedDifferingJars {
		match, err := stringutils.MatchWildcardPattern(pattern, jarName)
		if err != nil {
			return false, errors.Wrapf(err, "invalid accepted jar pattern '%s'", pattern)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
