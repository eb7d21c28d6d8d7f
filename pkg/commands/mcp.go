package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		httpHost  string
		httpPort  int
		httpPath  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start a Model Context Protocol server over the planner.",
		Long: `Launch an MCP server that lets an agent read days and edit schedule
slots, todos and goals. stdio is the default transport; use --transport=http
to serve the streamable HTTP transport instead.`,
		Example: `
dayplan mcp
dayplan mcp --transport=http --http-port=0
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			sess, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer sess.Close()

			path := strings.TrimSpace(httpPath)
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			runner := mcp.Runner{
				Persistence:      sess.Store,
				Locale:           sess.Locale,
				Logger:           sess.Logger,
				Version:          version,
				HTTPEndpointPath: path,
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case string(mcp.TransportHTTP):
				if httpPort < 0 || httpPort > 65535 {
					return oo.HandleError(fmt.Errorf("invalid http-port %d", httpPort))
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = net.JoinHostPort(strings.TrimSpace(httpHost), strconv.Itoa(httpPort))
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on http://%s%s\n", a.String(), path)
				}
			default:
				return oo.HandleError(fmt.Errorf("unsupported transport %q (expected stdio or http)", transport))
			}

			return oo.HandleError(runner.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "transport to use: stdio or http")
	cmd.Flags().StringVar(&httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&httpPath, "http-path", "/mcp", "HTTP endpoint path")

	topLevel.AddCommand(cmd)
}
