package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	attrStatus    = "status"
	attrOperation = "operation"
	attrTool      = "tool"
	attrList      = "list"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// MCP Tool metrics
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram

	// Things automation metrics
	scriptExecutionsTotal metric.Int64Counter
	scriptDuration        metric.Float64Histogram
	scriptTimeoutsTotal   metric.Int64Counter

	// List access metrics
	listReadsTotal metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	// MCP Tool Metrics
	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool execution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	// Things Automation Metrics
	m.scriptExecutionsTotal, err = meter.Int64Counter(
		"things_script_executions_total",
		metric.WithDescription("Total number of Things automation script executions"),
		metric.WithUnit("{execution}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create things_script_executions_total counter: %w", err)
	}

	m.scriptDuration, err = meter.Float64Histogram(
		"things_script_duration_seconds",
		metric.WithDescription("Things automation script duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create things_script_duration_seconds histogram: %w", err)
	}

	m.scriptTimeoutsTotal, err = meter.Int64Counter(
		"things_script_timeouts_total",
		metric.WithDescription("Total number of Things automation scripts that hit the execution timeout"),
		metric.WithUnit("{timeout}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create things_script_timeouts_total counter: %w", err)
	}

	m.listReadsTotal, err = meter.Int64Counter(
		"things_list_reads_total",
		metric.WithDescription("Total number of Things list read operations by list name"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create things_list_reads_total counter: %w", err)
	}

	return m, nil
}

// RecordToolInvocation records an MCP tool invocation with tool name, status, and duration.
//
// Parameters:
//   - toolName: Name of the MCP tool (e.g., "add_task", "list_tasks")
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the tool execution
func (m *Metrics) RecordToolInvocation(ctx context.Context, toolName, status string, duration time.Duration) {
	if m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, toolName),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordScriptExecution records a Things automation script run with operation,
// status, and duration.
//
// Parameters:
//   - operation: Operation name (addTask, listTasks, completeTask, ...)
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the script execution
func (m *Metrics) RecordScriptExecution(ctx context.Context, operation, status string, duration time.Duration) {
	if m.scriptExecutionsTotal == nil || m.scriptDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.scriptExecutionsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.scriptDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordScriptTimeout records a Things automation script that hit the execution deadline.
func (m *Metrics) RecordScriptTimeout(ctx context.Context, operation string) {
	if m.scriptTimeoutsTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
	}

	m.scriptTimeoutsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordListRead records a read operation against a named Things list.
// The list vocabulary is small and fixed, so the label is low-cardinality.
func (m *Metrics) RecordListRead(ctx context.Context, list string) {
	if m.listReadsTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrList, list),
	}

	m.listReadsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}
