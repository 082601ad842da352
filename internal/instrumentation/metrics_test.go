package instrumentation

import (
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T, ctx context.Context) *Provider {
	t.Helper()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: "prometheus",
		TracingExporter: "none",
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	t.Cleanup(func() { _ = provider.Shutdown(ctx) })
	return provider
}

func TestMetrics_RecordToolInvocation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx)

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordToolInvocation(ctx, "add_task", StatusSuccess, 100*time.Millisecond)
	metrics.RecordToolInvocation(ctx, "list_tasks", StatusError, 50*time.Millisecond)
}

func TestMetrics_RecordScriptExecution(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider := newTestProvider(t, ctx)
	metrics := provider.Metrics()

	// Should not panic
	metrics.RecordScriptExecution(ctx, "addTask", StatusSuccess, 200*time.Millisecond)
	metrics.RecordScriptExecution(ctx, "listTasks", StatusError, 500*time.Millisecond)
	metrics.RecordScriptTimeout(ctx, "dailyOverview")
	metrics.RecordListRead(ctx, "today")
}

func TestMetrics_NoopWhenUninitialized(t *testing.T) {
	ctx := context.Background()

	// A zero-value Metrics must never panic; it is what a disabled
	// provider hands out.
	m := &Metrics{}
	m.RecordToolInvocation(ctx, "add_task", StatusSuccess, time.Second)
	m.RecordScriptExecution(ctx, "addTask", StatusSuccess, time.Second)
	m.RecordScriptTimeout(ctx, "addTask")
	m.RecordListRead(ctx, "inbox")
}

func TestProvider_Disabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create disabled provider: %v", err)
	}

	if provider.Enabled() {
		t.Error("expected provider to be disabled")
	}
	if provider.Metrics() == nil {
		t.Error("expected no-op metrics recorder, got nil")
	}
	if provider.PrometheusHandler() != nil {
		t.Error("expected nil prometheus handler when disabled")
	}
	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("shutdown of disabled provider returned error: %v", err)
	}
}
