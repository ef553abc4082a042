package terminal

import (
	"os"
	"testing"
)

// setupCleanEnv gives a test full control over the terminal-related
// environment variables: the listed ones are set to the specified values and
// everything else is neutralized so the surrounding environment cannot leak
// into the test.
func setupCleanEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	// NO_COLOR is checked with os.LookupEnv, so empty and unset differ.
	// t.Setenv cannot unset, hence the manual restore.
	if value, specified := envVars["NO_COLOR"]; specified {
		t.Setenv("NO_COLOR", value)
	} else if original, wasSet := os.LookupEnv("NO_COLOR"); wasSet {
		_ = os.Unsetenv("NO_COLOR")
		t.Cleanup(func() { _ = os.Setenv("NO_COLOR", original) })
	}

	// The remaining variables are read with os.Getenv, so an empty value is
	// equivalent to unset.
	valueCheckedVars := []string{"CLICOLOR", "CLICOLOR_FORCE", "TERM"}
	valueCheckedVars = append(valueCheckedVars, ciEnvVars...)
	for _, v := range valueCheckedVars {
		if value, specified := envVars[v]; specified {
			t.Setenv(v, value)
		} else {
			t.Setenv(v, "")
		}
	}
}
