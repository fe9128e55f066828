package e2e

import "testing"

func TestMergeEnvOverride(t *testing.T) {
	t.Setenv("E2E_HARNESS_VAR", "inherited")

	merged := mergeEnv([]string{"E2E_HARNESS_VAR=override", "E2E_HARNESS_EXTRA=1"})

	var sawOverride, sawExtra bool
	for _, kv := range merged {
		switch kv {
		case "E2E_HARNESS_VAR=override":
			sawOverride = true
		case "E2E_HARNESS_VAR=inherited":
			t.Fatalf("inherited value not overridden")
		case "E2E_HARNESS_EXTRA=1":
			sawExtra = true
		}
	}
	if !sawOverride || !sawExtra {
		t.Fatalf("merged env missing expected entries: %v", merged)
	}
}
