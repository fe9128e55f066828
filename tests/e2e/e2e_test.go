//go:build integration

package e2e_test

import (
	"testing"
	"time"

	"github.com/Manny27nyc/datadog-agent/internal/fixtures"
	e2e "github.com/Manny27nyc/datadog-agent/internal/testharness/e2e"
)

// The stub agent prints the configuration file it was pointed at, standing in
// for a component that loads it on startup.
const stubScript = `echo "stub agent starting"; cat "$1"; sleep 30`

func TestAgentStartsWithGeneratedConfig(t *testing.T) {
	cfgPath, err := fixtures.GenAgentConfig(fixtures.AgentParams{
		Hostname: "host-42",
		Tags:     []string{"env:test", "team:x"},
	})
	if err != nil {
		t.Fatalf("generate agent config: %v", err)
	}

	stub := e2e.StubAgent(t, stubScript)
	sess := e2e.StartComponent(t, stub, []string{cfgPath}, t.TempDir())

	for _, want := range []string{"hostname: host-42", "env:test", "team:x"} {
		if err := sess.WaitFor(want, 10*time.Second); err != nil {
			t.Fatalf("%v\ntranscript:\n%s", err, sess.Output())
		}
	}
}

func TestSystemProbeStartsWithGeneratedConfig(t *testing.T) {
	cfgPath, err := fixtures.GenSystemProbeConfig(fixtures.SystemProbeParams{
		NetworkEnabled: true,
		LogLevel:       "DEBUG",
		LogPatterns:    []string{"module.runtime.*"},
	})
	if err != nil {
		t.Fatalf("generate system-probe config: %v", err)
	}

	stub := e2e.StubAgent(t, stubScript)
	sess := e2e.StartComponent(t, stub, []string{cfgPath}, t.TempDir())

	for _, want := range []string{"log_level: DEBUG", "enabled: true", "module.runtime.*"} {
		if err := sess.WaitFor(want, 10*time.Second); err != nil {
			t.Fatalf("%v\ntranscript:\n%s", err, sess.Output())
		}
	}
}
