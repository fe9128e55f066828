package e2e

import (
	"os"
	"strings"
)

// mergeEnv overlays extra KEY=VALUE entries on the current process
// environment, later entries winning.
func mergeEnv(extra []string) []string {
	merged := make(map[string]string)
	for _, kv := range append(os.Environ(), extra...) {
		if key, value, ok := strings.Cut(kv, "="); ok {
			merged[key] = value
		}
	}

	result := make([]string, 0, len(merged))
	for key, value := range merged {
		result = append(result, key+"="+value)
	}
	return result
}
