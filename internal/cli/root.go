package cli

import (
	"github.com/spf13/cobra"
)

// CreateRootCommand creates the root command for the CLI
func (a *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "navedit",
		Short:         "navedit - edit navigation menus and post titles",
		Long:          "navedit manages navigation menus and their items, and edits post titles, from the command line or an interactive terminal editor.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Quiet output")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Dump every UI message to ~/.navedit/logs (interactive commands)")

	rootCmd.AddCommand(a.createMenuCommand())
	rootCmd.AddCommand(a.createPostCommand())
	rootCmd.AddCommand(a.createMenusEditorCommand())
	rootCmd.AddCommand(a.createInitCommand())
	rootCmd.AddCommand(a.createStatusCommand())
	rootCmd.AddCommand(a.createVersionCommand())
	rootCmd.AddCommand(a.createRedirectCommand())
	rootCmd.AddCommand(a.createMCPCommand())

	return rootCmd
}
