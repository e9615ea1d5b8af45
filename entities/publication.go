package entities

import (
	"sort"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/jfrog/gofrog/stringutils"
	packageurl "github.com/package-url/packageurl-go"
	"github.com/pkg/errors"
)

// Publication is the read-only description of everything a publishing run deploys.
// It is produced from a finished configuration and consumed by the Maven deployment,
// P2 deployment and signing steps.
type Publication struct {
	Version        string        `json:"version"`
	BaseVersion    string        `json:"baseVersion"`
	Branch         string        `json:"branch,omitempty"`
	Revision       string        `json:"revision,omitempty"`
	Snapshot       bool          `json:"snapshot"`
	Repository     UploadTarget  `json:"repository"`
	Modules        []MavenModule `json:"modules,omitempty"`
	P2Repositories []P2Target    `json:"p2Repositories,omitempty"`
	Signing        Signing       `json:"signing"`
	Settings       MavenSettings `json:"mavenSettings"`
}

type UploadTarget struct {
	Name        string `json:"name"`
	StagingUrl  string `json:"stagingUrl"`
	SnapshotUrl string `json:"snapshotUrl"`
	// The URL matching the publication version.
	DeployUrl string `json:"deployUrl"`
}

// MavenModule is a single artifact to deploy, identified by group:artifact:version.
type MavenModule struct {
	Id                  string   `json:"id"`
	Project             string   `json:"project,omitempty"`
	GroupId             string   `json:"groupId,omitempty"`
	ArtifactId          string   `json:"artifactId"`
	Version             string   `json:"version"`
	ExcludedClassifiers []string `json:"excludedClassifiers,omitempty"`
	ExcludedExtensions  []string `json:"excludedExtensions,omitempty"`
}

type P2Target struct {
	Name                  string   `json:"name,omitempty"`
	Group                 string   `json:"group,omitempty"`
	Url                   string   `json:"url,omitempty"`
	DeployPath            string   `json:"deployPath,omitempty"`
	ReferenceFeature      string   `json:"referenceFeature,omitempty"`
	Namespaces            []string `json:"namespaces,omitempty"`
	AcceptedDifferingJars []string `json:"acceptedDifferingJars,omitempty"`
}

type Signing struct {
	CreateSignatures       bool `json:"createSignatures"`
	SignJars               bool `json:"signJars"`
	PackJars               bool `json:"packJars"`
	FailOnInconsistentJars bool `json:"failOnInconsistentJars"`
}

type MavenSettings struct {
	UserSettings   string `json:"userSettings,omitempty"`
	GlobalSettings string `json:"globalSettings,omitempty"`
	SecurityFile   string `json:"securityFile,omitempty"`
}

// FilterMavenModules gets one or more wildcard patterns and removes the modules whose id doesn't match any of them.
// Matching is case-insensitive.
func (publication *Publication) FilterMavenModules(patterns ...string) error {
	if len(patterns) == 0 {
		return nil
	}
	var kept []MavenModule
	for _, module := range publication.Modules {
		include := false
		for _, filterPattern := range patterns {
			match, err := stringutils.MatchWildcardPattern(strings.ToLower(filterPattern), strings.ToLower(module.Id))
			if err != nil {
				return errors.Wrapf(err, "invalid module pattern '%s'", filterPattern)
			}
			if match {
				include = true
				break
			}
		}
		if include {
			kept = append(kept, module)
		}
	}
	publication.Modules = kept
	return nil
}

// ToCycloneDxBom lists every Maven module as a library component.
func (publication *Publication) ToCycloneDxBom() (*cdx.BOM, error) {
	components := make([]cdx.Component, 0, len(publication.Modules))
	for _, module := range publication.Modules {
		if module.ArtifactId == "" {
			return nil, errors.New("invalid module identifier: " + module.Id)
		}
		components = append(components, cdx.Component{
			BOMRef:     module.Id,
			Type:       cdx.ComponentTypeLibrary,
			Group:      module.GroupId,
			Name:       module.ArtifactId,
			Version:    module.Version,
			PackageURL: mavenPackageUrl(module),
		})
	}
	sort.Slice(components, func(i, j int) bool {
		return components[i].BOMRef < components[j].BOMRef
	})

	bom := cdx.NewBOM()
	bom.Components = &components
	return bom, nil
}

func mavenPackageUrl(module MavenModule) string {
	return packageurl.NewPackageURL(packageurl.TypeMaven, module.GroupId, module.ArtifactId, module.Version, nil, "").ToString()
}
