// Package subprocess runs external tools with timeout protection and
// stdin race prevention.
package subprocess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/adam-cyclones/pitch-tts/tts"
)

// Runner executes external commands with a default timeout. Runs
// through the same runner are serialized; create one runner per tool.
type Runner struct {
	mu             sync.Mutex
	defaultTimeout time.Duration
}

// NewRunner creates a runner with the given default timeout.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Runner{defaultTimeout: timeout}
}

// CheckBinary reports whether a binary can be found in PATH, wrapping
// ErrSubprocessUnavailable when it cannot.
func CheckBinary(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %q not found in PATH", tts.ErrSubprocessUnavailable, name)
	}
	return nil
}

// Run executes a command and returns its stdout.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return r.run(ctx, "", name, args...)
}

// RunWithStdin executes a command feeding input on stdin. Stdin is
// attached before the process starts so the child never races a
// writer goroutine.
func (r *Runner) RunWithStdin(ctx context.Context, input, name string, args ...string) ([]byte, error) {
	return r.run(ctx, input, name, args...)
}

func (r *Runner) run(ctx context.Context, input, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.defaultTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q not found in PATH", tts.ErrSubprocessUnavailable, name)
		}
		return nil, fmt.Errorf("starting %s: %w", name, err)
	}

	err := cmd.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s exceeded %v", tts.ErrSubprocessTimeout, name, r.defaultTimeout)
		}
		return nil, fmt.Errorf("%s cancelled: %w", name, ctxErr)
	}

	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s failed: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}

	return stdout.Bytes(), nil
}
