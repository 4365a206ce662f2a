package logging

import (
	"os"
	"testing"
)

// unsetenv removes key for the duration of the test, restoring it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	if prev, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, prev) })
	}
	os.Unsetenv(key)
}
