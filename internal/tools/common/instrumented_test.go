package common

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/things-mcp/internal/server"
)

func TestInstrumentedToolHandler_Success(t *testing.T) {
	ctx := context.Background()

	// Create a server context without metrics (nil metrics)
	sc, err := server.NewServerContext(ctx, false)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	// Create a handler that returns success
	called := false
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("success"), nil
	}

	// Wrap with instrumentation
	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	// Call the wrapped handler
	result, err := wrapped(ctx, mcp.CallToolRequest{})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if !called {
		t.Error("expected handler to be called")
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}

func TestInstrumentedToolHandler_Error(t *testing.T) {
	ctx := context.Background()

	sc, err := server.NewServerContext(ctx, false)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	wantErr := errors.New("handler failed")
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, wantErr
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	_, err = wrapped(ctx, mcp.CallToolRequest{})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected handler error to pass through, got %v", err)
	}
}

func TestInstrumentedToolHandler_ToolResultError(t *testing.T) {
	ctx := context.Background()

	sc, err := server.NewServerContext(ctx, false)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("tool-level failure"), nil
	}

	wrapped := InstrumentedToolHandler("test_tool", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no transport error, got %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result to pass through")
	}
}

func TestInstrumentedToolHandlerWithOperation(t *testing.T) {
	ctx := context.Background()

	sc, err := server.NewServerContext(ctx, false)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	}

	wrapped := InstrumentedToolHandlerWithOperation("list_tasks", "listTasks", sc, handler)

	result, err := wrapped(ctx, mcp.CallToolRequest{})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result == nil {
		t.Error("expected result, got nil")
	}
}
