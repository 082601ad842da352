package server

import (
	"context"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// HTTPServer serves the MCP protocol over the streamable HTTP transport.
// It exposes the /mcp endpoint plus health check endpoints on the same
// listener. There is no authentication layer: the server automates the
// local desktop session and is meant to be bound to localhost.
type HTTPServer struct {
	mcpServer     *mcpserver.MCPServer
	httpServer    *http.Server
	healthChecker *HealthChecker
}

// NewHTTPServer creates a new streamable HTTP server wrapping the given MCP server.
func NewHTTPServer(mcpSrv *mcpserver.MCPServer) *HTTPServer {
	return &HTTPServer{
		mcpServer: mcpSrv,
	}
}

// SetHealthChecker sets the health checker for health check endpoints.
func (s *HTTPServer) SetHealthChecker(h *HealthChecker) {
	s.healthChecker = h
}

// Start starts the HTTP server in a blocking manner.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	streamableServer := mcpserver.NewStreamableHTTPServer(s.mcpServer,
		mcpserver.WithEndpointPath("/mcp"),
	)
	mux.Handle("/mcp", streamableServer)

	if s.healthChecker != nil {
		s.healthChecker.RegisterHealthEndpoints(mux)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
