package server

import (
	"context"
	"testing"
	"time"

	"github.com/teemow/things-mcp/internal/instrumentation"
)

func TestNewMetricsServer_RequiresProvider(t *testing.T) {
	_, err := NewMetricsServer(MetricsServerConfig{Addr: ":9090"})
	if err == nil {
		t.Error("expected error when instrumentation provider is missing")
	}
}

func TestNewMetricsServer_RequiresEnabledProvider(t *testing.T) {
	ctx := context.Background()
	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	_, err = NewMetricsServer(MetricsServerConfig{
		Addr:                    ":9090",
		InstrumentationProvider: provider,
	})
	if err == nil {
		t.Error("expected error when instrumentation provider is disabled")
	}
}

func TestNewMetricsServer_DefaultAddr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: instrumentation.ExporterPrometheus,
		TracingExporter: instrumentation.ExporterNone,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	srv, err := NewMetricsServer(MetricsServerConfig{
		InstrumentationProvider: provider,
	})
	if err != nil {
		t.Fatalf("NewMetricsServer() error = %v", err)
	}

	if srv.Addr() != DefaultMetricsAddr {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), DefaultMetricsAddr)
	}
}

func TestMetricsServer_ShutdownBeforeStart(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: instrumentation.ExporterPrometheus,
		TracingExporter: instrumentation.ExporterNone,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	srv, err := NewMetricsServer(MetricsServerConfig{
		Addr:                    ":0",
		InstrumentationProvider: provider,
	})
	if err != nil {
		t.Fatalf("NewMetricsServer() error = %v", err)
	}

	// Shutdown without Start must not panic or error.
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
