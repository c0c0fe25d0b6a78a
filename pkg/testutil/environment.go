package testutil

import (
	"os"
	"strings"
	"testing"
)

// Environment holds the temporary XDG directories of a test.
type Environment struct {
	ConfigHome string
	ConfigDirs string
	StateHome  string
}

// IsolateXDG points the XDG config and state directories at fresh
// temporary directories and clears every BRACES_ variable for the duration
// of the test.
func IsolateXDG(t *testing.T) *Environment {
	t.Helper()

	env := &Environment{
		ConfigHome: t.TempDir(),
		ConfigDirs: t.TempDir(),
		StateHome:  t.TempDir(),
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", env.ConfigDirs)
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "BRACES_") {
			Unsetenv(t, key)
		}
	}

	return env
}

// Unsetenv removes an environment variable for the duration of the test.
func Unsetenv(t *testing.T, key string) {
	t.Helper()

	original, wasSet := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Failed to unset environment variable %s: %v", key, err)
	}

	t.Cleanup(func() {
		if wasSet {
			if err := os.Setenv(key, original); err != nil {
				t.Fatalf("Failed to restore environment variable %s: %v", key, err)
			}
		}
	})
}
