// Package e2e contains the harness used by the integration tests to run
// agent components with generated configuration files.
package e2e

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/Manny27nyc/datadog-agent/internal/logger"
)

const maxTranscriptBytes = 1 << 20 // 1 MiB

// Session is a component under test running behind a PTY. The harness keeps a
// bounded transcript of everything the component writes so tests can wait on
// log lines.
type Session struct {
	Cmd *exec.Cmd
	PTY *os.File

	mu      sync.Mutex
	raw     []byte
	readErr error
	stopped bool

	log  zerolog.Logger
	done chan struct{}
}

func startSession(binary string, args []string, dir string, env []string) (*Session, error) {
	cmd := exec.Command(binary, args...)
	cmd.Dir = dir
	cmd.Env = mergeEnv(env)

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s := &Session{
		Cmd:  cmd,
		PTY:  ptyFile,
		log:  logger.Init("info"),
		done: make(chan struct{}),
	}
	s.log.Debug().Str("binary", binary).Strs("args", args).Msg("component session started")

	go s.readLoop()

	return s, nil
}

func (s *Session) readLoop() {
	defer close(s.done)

	buf := make([]byte, 4096)
	for {
		n, err := s.PTY.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.raw = appendAndTrim(s.raw, buf[:n], maxTranscriptBytes)
			s.mu.Unlock()
		}
		if err != nil {
			// EIO is the normal PTY read result once the child exits.
			if !errors.Is(err, os.ErrClosed) && !errors.Is(err, unix.EIO) {
				s.mu.Lock()
				s.readErr = err
				s.mu.Unlock()
			}
			return
		}
	}
}

func appendAndTrim(buf, chunk []byte, limit int) []byte {
	if len(chunk) == 0 {
		return buf
	}

	buf = append(buf, chunk...)
	if limit > 0 && len(buf) > limit {
		buf = append([]byte{}, buf[len(buf)-limit:]...)
	}
	return buf
}

// SendString writes raw input to the component's PTY.
func (s *Session) SendString(input string) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}
	if _, err := s.PTY.Write([]byte(input)); err != nil {
		return fmt.Errorf("send string: %w", err)
	}
	return nil
}

// Output returns the transcript with ANSI escape sequences stripped.
func (s *Session) Output() string {
	return sanitize(s.RawOutput())
}

// RawOutput returns the raw PTY transcript (with ANSI codes intact).
func (s *Session) RawOutput() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.raw...)
}

// WaitFor waits until the sanitized transcript contains substring or times out.
func (s *Session) WaitFor(substring string, timeout time.Duration) error {
	deadline := time.After(timeout)
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if strings.Contains(s.Output(), substring) {
				return nil
			}
		case <-deadline:
			return fmt.Errorf("timeout waiting for %q", substring)
		}
	}
}

// Stop terminates the component and closes the PTY. A component that exits on
// the termination signal is treated as stopped cleanly.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	defer s.PTY.Close()

	if s.Cmd.Process != nil {
		_ = s.Cmd.Process.Signal(unix.SIGTERM)
	}

	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		if s.Cmd.Process != nil {
			_ = s.Cmd.Process.Kill()
		}
		<-s.done
	}

	err := s.Cmd.Wait()
	if exitErr, ok := err.(*exec.ExitError); ok {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if status.Signaled() && status.Signal() == unix.SIGTERM {
				err = nil
			}
		}
	}

	s.mu.Lock()
	readErr := s.readErr
	s.mu.Unlock()

	s.log.Debug().Err(err).Msg("component session stopped")

	if err != nil {
		return err
	}
	return readErr
}

func sanitize(data []byte) string {
	var builder strings.Builder
	builder.Grow(len(data))

	for i := 0; i < len(data); i++ {
		b := data[i]
		if b == 0x1b { // ESC
			i++
			if i >= len(data) {
				break
			}
			switch data[i] {
			case '[':
				for {
					i++
					if i >= len(data) || isCSITerminator(data[i]) {
						break
					}
				}
			case ']':
				for i < len(data) && data[i] != 0x07 {
					i++
				}
			default:
				// Skip a single character for other escape sequences.
			}
			continue
		}

		if b < 0x20 {
			if b == '\n' || b == '\t' {
				builder.WriteByte(b)
			}
			continue
		}

		builder.WriteByte(b)
	}

	return builder.String()
}

func isCSITerminator(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
