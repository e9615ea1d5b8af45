package cienv

import (
	"os"
	"testing"
)

// allEnvVars lists every variable read by the providers.
var allEnvVars = []string{
	CIEnvVar,
	GitHubActionsEnvVar, GitHubWorkflowEnvVar, GitHubRunIDEnvVar, GitHubRefNameEnvVar, GitHubHeadRefEnvVar, GitHubShaEnvVar,
	GitLabCIEnvVar, GitLabPipelineIDEnvVar, GitLabJobIDEnvVar, GitLabCommitRefNameEnvVar, GitLabMergeRequestSourceEnvVar, GitLabCommitShaEnvVar,
}

// setCleanEnv unsets every provider variable and then sets envVars. Values are restored after the test.
func setCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for _, key := range allEnvVars {
		// t.Setenv registers the restore of the original value.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset env var %s: %v", key, err)
		}
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}
