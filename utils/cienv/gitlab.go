package cienv

import (
	"os"
)

const (
	// Reference: https://docs.gitlab.com/ee/ci/variables/predefined_variables.html
	GitLabCIEnvVar                 = "GITLAB_CI"
	GitLabPipelineIDEnvVar         = "CI_PIPELINE_ID"
	GitLabJobIDEnvVar              = "CI_JOB_ID"
	GitLabCommitRefNameEnvVar      = "CI_COMMIT_REF_NAME"
	GitLabMergeRequestSourceEnvVar = "CI_MERGE_REQUEST_SOURCE_BRANCH_NAME"
	GitLabCommitShaEnvVar          = "CI_COMMIT_SHA"

	GitLabProviderName = "gitlab"
)

type GitLabCIProvider struct{}

func init() {
	RegisterProvider(&GitLabCIProvider{})
}

func (g *GitLabCIProvider) Name() string {
	return GitLabProviderName
}

// IsActive checks GITLAB_CI=true plus CI_PIPELINE_ID and CI_JOB_ID.
func (g *GitLabCIProvider) IsActive() bool {
	if os.Getenv(GitLabCIEnvVar) != "true" {
		return false
	}
	return os.Getenv(GitLabPipelineIDEnvVar) != "" && os.Getenv(GitLabJobIDEnvVar) != ""
}

// GetVcsInfo prefers the merge request source branch over CI_COMMIT_REF_NAME.
// CI_COMMIT_REF_NAME holds the tag name in tag pipelines.
func (g *GitLabCIProvider) GetVcsInfo() CIVcsInfo {
	branch := os.Getenv(GitLabMergeRequestSourceEnvVar)
	if branch == "" {
		branch = os.Getenv(GitLabCommitRefNameEnvVar)
	}
	return CIVcsInfo{
		Provider: GitLabProviderName,
		Branch:   branch,
		Revision: os.Getenv(GitLabCommitShaEnvVar),
	}
}
