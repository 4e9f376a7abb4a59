package mcp

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
)

// Server exposes the export diff engine as MCP tools.
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates an MCP server with the analyze_diff and analyze_patch tools registered.
func NewServer(version string) *Server {
	mcpServer := server.NewMCPServer(
		"exportdiff-mcp",
		version,
		server.WithToolCapabilities(true),
	)

	AddAnalyzeDiffTool(mcpServer)
	AddAnalyzePatchTool(mcpServer)

	return &Server{mcp: mcpServer}
}

// Serve runs the server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
