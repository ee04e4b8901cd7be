package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/factors"
	"github.com/aretw0/factors/pkg/domain"
	"github.com/aretw0/factors/pkg/input"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Factorize(ctx context.Context, n int64) (domain.Result, error)
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("factors-mcp", factors.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: factorize
	s.mcpServer.AddTool(mcp.NewTool("factorize",
		mcp.WithDescription("Split a non-negative integer into its smallest divisor and the matching cofactor using trial division."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("The integer to factorize")),
	), s.handleFactorize)

	// TOOL: factorize_list
	s.mcpServer.AddTool(mcp.NewTool("factorize_list",
		mcp.WithDescription("Factorize a newline separated list of integers. Returns one 'n=i*j' line per number that has factors."),
		mcp.WithString("numbers", mcp.Required(), mcp.Description("Integers, one per line")),
	), s.handleFactorizeList)
}

const maxExactInt = 1 << 53

func (s *Server) handleFactorize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f, err := request.RequireFloat("n")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// Above 2^53 neighbouring integers share a float64, so n is not known exactly.
	if f != math.Trunc(f) || math.Abs(f) >= maxExactInt {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %v", f, domain.ErrInvalidNumber)), nil
	}

	r, err := s.engine.Factorize(ctx, int64(f))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !r.Found {
		return mcp.NewToolResultText(fmt.Sprintf("%d has no factorization", r.N)), nil
	}
	return mcp.NewToolResultText(r.String()), nil
}

func (s *Server) handleFactorizeList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("numbers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	numbers, err := input.Parse(strings.NewReader(text))
	if err != nil {
		var pe *domain.ParseError
		if errors.As(err, &pe) {
			slog.Warn("MCP factorize_list: input rejected", "line", pe.Line)
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	var lines []string
	for _, n := range numbers {
		r, err := s.engine.Factorize(ctx, n)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if r.Found {
			lines = append(lines, r.String())
		}
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}
