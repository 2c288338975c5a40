package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/mcp"
)

var mcpFile string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over stdio.

The server exposes the tools search, add, update and remove on an
in-memory phone book that lives as long as the server process. Use --file
to start from a phone book file.

Client configuration:
  {
    "mcpServers": {
      "phonebook": {
        "command": "/path/to/phonebook",
        "args": ["mcp", "serve", "--file", "/path/to/phoneBook-small.txt"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().StringVarP(&mcpFile, "file", "f", "", "phone book file to load before serving")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}

	// Tool handlers may run concurrently.
	session, err := newSession(settings.Backend, true)
	if err != nil {
		return err
	}
	if mcpFile != "" {
		// Stdout carries the protocol; report on stderr.
		if err := importFile(cmd, session, mcpFile, cmd.PrintErrln); err != nil {
			return err
		}
	}

	server, err := mcp.NewServer(&mcp.Ports{Directory: session.Directory})
	if err != nil {
		return err
	}
	return server.Run(cmd.Context())
}
