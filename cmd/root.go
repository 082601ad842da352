package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the things-mcp application
var rootCmd = &cobra.Command{
	Use:   "things-mcp",
	Short: "MCP server for Things 3 task management",
	Long: `things-mcp exposes the Things 3 task manager to AI assistants through
the Model Context Protocol (MCP).

It drives Things via AppleScript automation and provides tools to add,
list, search, complete and update tasks, manage projects, and produce a
daily overview.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "things-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
