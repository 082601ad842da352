package server

import (
	"context"
	"sync"

	"github.com/teemow/things-mcp/internal/instrumentation"
	"github.com/teemow/things-mcp/internal/things"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx          context.Context
	cancel       context.CancelFunc
	thingsClient *things.Client
	readOnly     bool
	metrics      *instrumentation.Metrics
	auditLogger  *instrumentation.AuditLogger
	mu           sync.RWMutex
	shutdown     bool
}

// NewServerContext creates a new server context.
// The Things client is initialized lazily on first use so that the server
// can start on machines where the automation bridge is temporarily missing.
func NewServerContext(ctx context.Context, readOnly bool) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		readOnly: readOnly,
		shutdown: false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// ReadOnly returns whether write operations are disabled.
func (sc *ServerContext) ReadOnly() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.readOnly
}

// ThingsClient returns the Things client, creating and caching it on first use.
func (sc *ServerContext) ThingsClient() (*things.Client, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.thingsClient != nil {
		return sc.thingsClient, nil
	}

	client, err := things.NewClient()
	if err != nil {
		return nil, err
	}

	sc.thingsClient = client
	return client, nil
}

// SetThingsClient sets the Things client.
// Primarily useful for tests that inject a fake script runner.
func (sc *ServerContext) SetThingsClient(client *things.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.thingsClient = client
}

// Metrics returns the metrics recorder, or nil if instrumentation is not configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// AuditLogger returns the audit logger, or nil if audit logging is not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger.
func (sc *ServerContext) SetAuditLogger(auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
