// Package loader reads declarative publishing configuration files and builds a
// publishing.PublishingConfig from them through the configuration builders.
//
// TOML files use tables for nested objects:
//
//	version = "2.1.0-SNAPSHOT"
//	signJars = true
//
//	[[project]]
//	name = "language"
//	group = "org.example"
//
//	  [[project.artifact]]
//	  name = "lang-core"
//	  excludeClassifiers = ["tests"]
//
// JSON files use the same keys, with "projects", "artifacts" and "p2Repositories" for the lists,
// and are validated against an embedded JSON schema before they are applied.
package loader

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jfrog/publish-info-go/publishing"
	"github.com/jfrog/publish-info-go/utils"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schema []byte

// LoadFile loads a .toml or .json configuration file.
func LoadFile(path string, env publishing.Environment, log utils.Log) (*publishing.PublishingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading publishing configuration")
	}
	log.Debug("Loading publishing configuration from " + path)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return LoadToml(data, env, log)
	case ".json":
		return LoadJson(data, env, log)
	default:
		return nil, errors.New(fmt.Sprintf("unsupported configuration file extension '%s', expected .toml or .json", ext))
	}
}

func LoadToml(data []byte, env publishing.Environment, log utils.Log) (*publishing.PublishingConfig, error) {
	var doc document
	metadata, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed parsing TOML publishing configuration")
	}
	for _, key := range metadata.Undecoded() {
		log.Warn(fmt.Sprintf("Ignoring unknown configuration key '%s'", key.String()))
	}
	return apply(&doc, env, log), nil
}

func LoadJson(data []byte, env publishing.Environment, log utils.Log) (*publishing.PublishingConfig, error) {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed parsing JSON publishing configuration")
	}
	if !result.Valid() {
		var problems []string
		for _, resultErr := range result.Errors() {
			problems = append(problems, resultErr.String())
		}
		return nil, errors.New("invalid JSON publishing configuration:\n  " + strings.Join(problems, "\n  "))
	}
	var doc document
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed parsing JSON publishing configuration")
	}
	return apply(&doc, env, log), nil
}

func apply(doc *document, env publishing.Environment, log utils.Log) *publishing.PublishingConfig {
	config := publishing.NewPublishingConfig(env)
	if doc.Version != "" {
		config.SetVersion(doc.Version)
	}
	if doc.Branch != "" {
		config.SetBranch(doc.Branch)
	}
	applyFlag(log, "createSignatures", doc.CreateSignatures, config.SetCreateSignatures, config.SetCreateSignaturesText)
	applyFlag(log, "signJars", doc.SignJars, config.SetSignJars, config.SetSignJarsText)
	applyFlag(log, "packJars", doc.PackJars, config.SetPackJars, config.SetPackJarsText)
	applyFlag(log, "failOnInconsistentJars", doc.FailOnInconsistentJars, config.SetFailOnInconsistentJars, config.SetFailOnInconsistentJarsText)
	applyPath(doc.UserMavenSettings, config.SetUserMavenSettings)
	applyPath(doc.GlobalMavenSettings, config.SetGlobalMavenSettings)
	applyPath(doc.MavenSecurityFile, config.SetMavenSecurityFile)

	if repoDoc := doc.MavenUploadRepository; repoDoc != nil {
		repo := config.MavenUploadRepository(func(repo *publishing.UploadRepository) {
			applyString(repoDoc.Name, repo.SetName)
			applyString(repoDoc.StagingUrl, repo.SetStagingUrl)
			applyString(repoDoc.SnapshotUrl, repo.SetSnapshotUrl)
		})
		log.Debug(utils.MaskCredentials(fmt.Sprintf("Configured upload repository '%s' (staging %s, snapshots %s)", repo.Name(), repo.StagingUrl(), repo.SnapshotUrl())))
	}
	for _, projectEntry := range doc.Projects {
		project := config.AddProject(func(project *publishing.Project) {
			applyString(projectEntry.Name, project.SetName)
			applyString(projectEntry.Group, project.SetGroup)
			for _, artifactEntry := range projectEntry.Artifacts {
				project.AddArtifact(func(artifact *publishing.Artifact) {
					applyString(artifactEntry.Name, artifact.SetName)
					applyString(artifactEntry.Group, artifact.SetGroup)
					artifact.ExcludeClassifier(artifactEntry.ExcludeClassifiers...)
					artifact.ExcludeExtension(artifactEntry.ExcludeExtensions...)
				})
			}
		})
		log.Debug(fmt.Sprintf("Added project '%s' with %d artifacts", project.Name(), len(project.Artifacts())))
	}
	for _, repoEntry := range doc.P2Repositories {
		repo := config.AddP2Repository(func(repo *publishing.P2Repository) {
			applyString(repoEntry.Name, repo.SetName)
			applyString(repoEntry.Group, repo.SetGroup)
			applyString(repoEntry.Url, repo.SetUrl)
			applyString(repoEntry.DeployPath, repo.SetDeployPath)
			applyString(repoEntry.ReferenceFeature, repo.SetReferenceFeature)
			for _, namespace := range repoEntry.Namespaces {
				repo.AddNamespace(namespace)
			}
			for _, pattern := range repoEntry.AcceptDifferingJars {
				repo.AcceptDifferingJars(pattern)
			}
		})
		log.Debug(utils.MaskCredentials(fmt.Sprintf("Added P2 repository '%s' at %s", repo.Name(), repo.Url())))
	}
	return config
}

// applyFlag sets a boolean from a bool or a string. Values of any other type leave the flag unchanged.
func applyFlag(log utils.Log, key string, value interface{}, set func(bool), setText func(string)) {
	switch typed := value.(type) {
	case nil:
	case bool:
		set(typed)
	case string:
		setText(typed)
	default:
		log.Warn(fmt.Sprintf("Ignoring '%s': expected a boolean or a string but got %v", key, value))
	}
}

func applyPath(path string, set func(string)) {
	if path != "" {
		set(filepath.FromSlash(path))
	}
}

func applyString(value string, set func(string)) {
	if value != "" {
		set(value)
	}
}
