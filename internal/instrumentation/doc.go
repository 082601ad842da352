// Package instrumentation provides OpenTelemetry instrumentation for the
// things-mcp server.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for MCP tool calls and Things automation scripts
//   - Distributed tracing for tool invocations and script executions
//   - Prometheus metrics export via /metrics endpoint on dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//
// Things Automation Metrics:
//   - things_script_executions_total: Counter of script executions by operation and status
//   - things_script_duration_seconds: Histogram of script execution durations
//   - things_script_timeouts_total: Counter of scripts that hit the execution timeout
//   - things_list_reads_total: Counter of list read operations by list name
//
// # Tracing
//
// Distributed tracing spans are created for:
//   - MCP tool invocations (tool.<name>)
//   - Things automation scripts (things.<operation>)
//
// # Configuration
//
// Instrumentation is configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable all instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type: prometheus, otlp, stdout (default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type: otlp, stdout, none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP collector endpoint for otlp exporters
//   - OTEL_TRACES_SAMPLER_ARG: Trace sampling rate 0.0-1.0 (default: 0.1)
//   - AUDIT_LOGGING_ENABLED: Enable/disable audit logging (default: true)
//
// # Audit Logging
//
// Every tool invocation is recorded as a structured audit event with tool
// name, operation, outcome, duration and trace correlation IDs. Because most
// tools mutate the user's task database, the audit trail is kept on by
// default and can be disabled via AUDIT_LOGGING_ENABLED=false.
package instrumentation
