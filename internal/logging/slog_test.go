package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestErrWithNilError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("operation done", Err(nil))

	out := buf.String()
	if strings.Contains(out, KeyError) {
		t.Errorf("log output contains error attribute for nil error: %s", out)
	}
}

func TestErrWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Warn("operation failed", Err(errors.New("boom")))

	out := buf.String()
	if !strings.Contains(out, "boom") {
		t.Errorf("log output missing error message: %s", out)
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithTool(WithOperation(logger, "listTasks"), "list_tasks").Info("done", Status(StatusSuccess))

	out := buf.String()
	for _, want := range []string{"operation=listTasks", "tool=list_tasks", "status=success"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
