package cienv

import (
	"os"
)

const (
	// Reference: https://docs.github.com/en/actions/learn-github-actions/environment-variables
	GitHubActionsEnvVar  = "GITHUB_ACTIONS"
	GitHubWorkflowEnvVar = "GITHUB_WORKFLOW"
	GitHubRunIDEnvVar    = "GITHUB_RUN_ID"
	GitHubRefNameEnvVar  = "GITHUB_REF_NAME"
	GitHubHeadRefEnvVar  = "GITHUB_HEAD_REF"
	GitHubShaEnvVar      = "GITHUB_SHA"

	GitHubProviderName = "github"
)

type GitHubActionsProvider struct{}

func init() {
	RegisterProvider(&GitHubActionsProvider{})
}

func (g *GitHubActionsProvider) Name() string {
	return GitHubProviderName
}

// IsActive checks GITHUB_ACTIONS=true plus GITHUB_WORKFLOW and GITHUB_RUN_ID,
// which are always set in GitHub Actions.
func (g *GitHubActionsProvider) IsActive() bool {
	if os.Getenv(GitHubActionsEnvVar) != "true" {
		return false
	}
	return os.Getenv(GitHubWorkflowEnvVar) != "" && os.Getenv(GitHubRunIDEnvVar) != ""
}

// GetVcsInfo reads the branch from GITHUB_HEAD_REF for pull requests and GITHUB_REF_NAME otherwise.
// For pull requests GITHUB_REF_NAME holds "<number>/merge".
func (g *GitHubActionsProvider) GetVcsInfo() CIVcsInfo {
	branch := os.Getenv(GitHubHeadRefEnvVar)
	if branch == "" {
		branch = os.Getenv(GitHubRefNameEnvVar)
	}
	return CIVcsInfo{
		Provider: GitHubProviderName,
		Branch:   branch,
		Revision: os.Getenv(GitHubShaEnvVar),
	}
}
