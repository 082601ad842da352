package things

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestOsascriptRunnerDefaults(t *testing.T) {
	r := NewOsascriptRunner()
	if r.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", r.Timeout, DefaultTimeout)
	}
}

func TestOsascriptRunnerRun(t *testing.T) {
	// Skip if osascript is not installed (anything but macOS).
	if _, err := exec.LookPath("osascript"); err != nil {
		t.Skip("osascript not installed")
	}

	r := NewOsascriptRunner()
	out, err := r.Run(context.Background(), `return "hello"`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Run() = %q, want %q", out, "hello")
	}
}

func TestOsascriptRunnerExecError(t *testing.T) {
	if _, err := exec.LookPath("osascript"); err != nil {
		t.Skip("osascript not installed")
	}

	r := NewOsascriptRunner()
	_, err := r.Run(context.Background(), "this is not applescript (")
	if err == nil {
		t.Fatal("Run() expected error for invalid script")
	}

	var eerr *ExecError
	if !errors.As(err, &eerr) {
		t.Fatalf("Run() error = %T, want *ExecError", err)
	}
	if eerr.Stderr == "" {
		t.Error("ExecError.Stderr is empty, want captured diagnostics")
	}
}

func TestOsascriptRunnerTimeout(t *testing.T) {
	if _, err := exec.LookPath("osascript"); err != nil {
		t.Skip("osascript not installed")
	}

	r := &OsascriptRunner{Timeout: 100 * time.Millisecond}
	_, err := r.Run(context.Background(), "delay 5")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Run() error = %v, want ErrTimeout", err)
	}
}

func TestExecErrorMessage(t *testing.T) {
	err := &ExecError{Stderr: "syntax error", Err: errors.New("exit status 1")}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("ExecError.Error() = %q, want stderr included", err.Error())
	}

	bare := &ExecError{Err: errors.New("exit status 1")}
	if strings.Contains(bare.Error(), "stderr") {
		t.Errorf("ExecError.Error() = %q, want no stderr mention when empty", bare.Error())
	}
}

func TestThingsErrorWrapping(t *testing.T) {
	inner := &ValidationError{Field: "title", Reason: "must not be empty"}
	err := &ThingsError{Op: "addTask", Err: inner}

	if !strings.Contains(err.Error(), "addTask") {
		t.Errorf("ThingsError.Error() = %q, want operation name included", err.Error())
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Error("ThingsError does not unwrap to ValidationError")
	}
}
