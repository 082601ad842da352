package things

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single osascript invocation. Automation calls
// are not retried because they are not guaranteed idempotent (creating a
// task twice is worse than failing once).
const DefaultTimeout = 10 * time.Second

// Runner executes an AppleScript and returns its trimmed standard
// output. Implementations must make exactly one attempt per call.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// OsascriptRunner runs scripts through the macOS osascript binary.
type OsascriptRunner struct {
	// Timeout bounds each invocation; DefaultTimeout when zero.
	Timeout time.Duration
}

// NewOsascriptRunner returns a runner with the default timeout.
func NewOsascriptRunner() *OsascriptRunner {
	return &OsascriptRunner{Timeout: DefaultTimeout}
}

// Run executes the script synchronously. A zero exit yields the trimmed
// stdout. A non-zero exit yields an ExecError with the captured stderr.
// Exceeding the timeout yields ErrTimeout, distinct from an exec
// failure so callers can tell a hung app from a scripting error.
func (r *OsascriptRunner) Run(ctx context.Context, script string) (string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "osascript", "-e", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
	if err != nil {
		return "", &ExecError{
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
