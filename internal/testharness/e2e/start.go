package e2e

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// StartComponent launches binary with args behind a PTY and registers session
// cleanup with t. extraEnv entries override inherited environment variables.
func StartComponent(t testing.TB, binary string, args []string, dir string, extraEnv ...string) *Session {
	t.Helper()

	env := append([]string{"TERM=xterm-256color"}, extraEnv...)
	sess, err := startSession(binary, args, dir, env)
	if err != nil {
		t.Fatalf("start component: %v", err)
	}

	t.Cleanup(func() {
		if err := sess.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: stopping component: %v\n", err)
		}
	})

	return sess
}

// StubAgent writes an executable shell script standing in for a component
// binary and returns its path. The script body runs under /bin/sh with the
// component's arguments available as "$@".
func StubAgent(t testing.TB, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stub-agent")
	contents := "#!/bin/sh\n" + script + "\n"
	if err := os.WriteFile(path, []byte(contents), 0o755); err != nil {
		t.Fatalf("write stub agent: %v", err)
	}
	return path
}
