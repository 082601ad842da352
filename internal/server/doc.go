// Package server provides the MCP server context, health checks, and the
// dedicated metrics endpoint for the things-mcp application.
//
// # Key Components
//
// ServerContext owns the lifecycle of the Things automation client. The
// client is created lazily on first use and cached, so the server can start
// before Things itself is running. The context also carries the metrics
// recorder and audit logger shared by all tool handlers, plus the read-only
// flag that gates write tools.
//
// HealthChecker serves /healthz (liveness), /readyz (readiness), and
// /healthz/detailed endpoints for process supervisors and monitoring.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, keeping
// operational data off the MCP transport.
package server
