package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/navedit/internal/logging"
	"github.com/zamm-dev/navedit/internal/mcp"
)

// createMCPCommand serves the menus and posts of the current project to MCP
// clients until the transport closes or the process is signalled
func (a *App) createMCPCommand() *cobra.Command {
	var transport string
	var address string
	var readOnly bool

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve menus and posts over the Model Context Protocol",
		Long: `Start a Model Context Protocol server over the project's storage.

Tools: list_menus, create_menu, delete_menu and set_post_title. With --read-only
only list_menus is offered, so agents can inspect navigation without changing it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// reject a bad flag before any transport is opened
			transport, err := mcp.ParseTransport(transport)
			if err != nil {
				return err
			}

			server := a.newMCPServer(readOnly)
			logging.Info(logging.SubsystemMCP, "serving %s storage at %s (read-only: %t)",
				a.config.Storage.Backend, a.config.Storage.Path, readOnly)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			errChan := make(chan error, 1)
			go func() {
				errChan <- server.Start(transport, address)
			}()

			select {
			case err := <-errChan:
				if err != nil {
					return fmt.Errorf("MCP server error: %w", err)
				}
			case sig := <-sigChan:
				logging.Info(logging.SubsystemMCP, "received signal %v, shutting down MCP server", sig)
				if err := server.Stop(); err != nil {
					return fmt.Errorf("error stopping MCP server: %w", err)
				}
				return <-errChan
			}

			return nil
		},
	}

	mcpCmd.Flags().StringVar(&transport, "transport", mcp.TransportStdio, "Transport type (stdio or http)")
	mcpCmd.Flags().StringVar(&address, "address", ":8080", "Address to bind HTTP server (only used with http transport)")
	mcpCmd.Flags().BoolVar(&readOnly, "read-only", false, "Only offer tools that do not modify menus or posts")

	return mcpCmd
}

func (a *App) newMCPServer(readOnly bool) *mcp.Server {
	server := mcp.NewServer(a.menuService, a.postService)
	server.SetReadOnly(readOnly)
	return server
}
