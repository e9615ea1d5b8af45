package publishing

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// ValidationError lists every problem that prevents a configuration from being published.
type ValidationError struct {
	Problems []string
}

func (err *ValidationError) Error() string {
	return "invalid publishing configuration:\n  " + strings.Join(err.Problems, "\n  ")
}

// ValidationReport is the outcome of Validate. Warnings never fail a publication.
type ValidationReport struct {
	Problems []string
	Warnings []string
}

// Err returns a ValidationError if the report holds any problem.
func (report *ValidationReport) Err() error {
	if len(report.Problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: report.Problems}
}

func (report *ValidationReport) problem(format string, a ...interface{}) {
	report.Problems = append(report.Problems, fmt.Sprintf(format, a...))
}

func (report *ValidationReport) warning(format string, a ...interface{}) {
	report.Warnings = append(report.Warnings, fmt.Sprintf(format, a...))
}

// Validate checks that the configuration holds everything the publishing steps need.
// It does not touch the file system.
func (config *PublishingConfig) Validate() *ValidationReport {
	report := &ValidationReport{}
	config.validateVersion(report)
	for i, project := range config.projects {
		projectLabel := describe("project", i, project.name)
		if len(project.artifacts) == 0 {
			report.problem("%s has no artifacts", projectLabel)
		}
		for j, artifact := range project.artifacts {
			artifactLabel := describe("artifact", j, artifact.name)
			if artifact.name == "" {
				report.problem("%s of %s has no name", artifactLabel, projectLabel)
			}
			if artifact.Group() == "" {
				report.problem("%s of %s has no group and the project defines none", artifactLabel, projectLabel)
			}
		}
	}
	for i, repo := range config.p2Repositories {
		if repo.url == "" {
			report.problem("%s has no url", describe("P2 repository", i, repo.name))
		}
	}
	if config.uploadRepository.StagingUrl() == "" && !config.IsSnapshot() {
		report.problem("upload repository '%s' has no staging url", config.uploadRepository.Name())
	}
	if config.uploadRepository.SnapshotUrl() == "" && config.IsSnapshot() {
		report.problem("upload repository '%s' has no snapshot url", config.uploadRepository.Name())
	}
	return report
}

func (config *PublishingConfig) validateVersion(report *ValidationReport) {
	baseVersion, err := config.BaseVersion()
	if err != nil {
		if errors.Is(err, ErrVersionNotConfigured) {
			report.problem("version is not configured")
		} else {
			report.problem("%s", err.Error())
		}
		return
	}
	if _, err = semver.StrictNewVersion(baseVersion); err != nil {
		report.warning("base version '%s' is not a semantic version: %s", baseVersion, err.Error())
	}
}

func describe(kind string, index int, name string) string {
	if name == "" {
		return fmt.Sprintf("%s #%d", kind, index+1)
	}
	return fmt.Sprintf("%s '%s'", kind, name)
}
