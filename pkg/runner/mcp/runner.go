package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/dayplan/pkg/daykey"
	"tableflip.dev/dayplan/pkg/logging"
	"tableflip.dev/dayplan/pkg/planner"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

const defaultEndpoint = "/mcp"

// Runner coordinates MCP server startup.
type Runner struct {
	Persistence planner.Persistence
	Locale      daykey.Locale
	Logger      *log.Logger
	Version     string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
}

// NewServer builds an MCP server with every dayplan tool and resource.
func NewServer(svc *Service, version string) *server.MCPServer {
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		"dayplan MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and edit the daily planner: hourly schedule from 06H00 to 21H00, todos and goals, one record per YYYY-MM-DD day."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("mcp runner requires persistence")
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	srv := NewServer(NewService(r.Persistence, r.Locale), r.Version)

	switch t := r.Transport; t {
	case "", TransportStdio:
		logger.Debug("serving mcp", "transport", TransportStdio)
		return server.ServeStdio(srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv, logger)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, logger *log.Logger) error {
	path := r.HTTPEndpointPath
	if path == "" {
		path = defaultEndpoint
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("serving mcp", "transport", TransportHTTP, "addr", ln.Addr().String(), "path", path)
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if err := httpSrv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
