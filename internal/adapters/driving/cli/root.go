// Package cli provides the cobra command tree for the phonebook binary.
// It is the composition root: commands build the directory, importer and
// settings services and hand them to the shell, TUI and MCP drivers.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driven"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driving"
	"github.com/custodia-labs/phonebook-cli/internal/core/services"
	"github.com/custodia-labs/phonebook-cli/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Persistent flags.
var (
	backendFlag string
	configDir   string
	verbose     bool
)

// Services created by initServices before any command runs.
var (
	configStore     driven.ConfigStore
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "phonebook",
	Short: "A phone book backed by a hash index or a linear list",
	Long: `phonebook maps phone numbers to names and lets you search, insert,
update and delete contacts. Two interchangeable directories are available:

  hash - contacts keyed by phone number in a hash index
  list - an unordered list scanned from the front on every call

Every directory call is timed, so the two backends can be compared on the
sample phone books (phoneBook-small.txt, -medium.txt, -large.txt).

Run without a subcommand to start the interactive shell.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	RunE:              runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "",
		"directory backend: hash or list (default from config)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/.phonebook)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log directory calls and timings to stderr")
	addSampleFlag(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is cancelled to stop
// long-running commands such as load --follow and mcp serve.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	store, err := openConfigStore(configDir)
	if err != nil {
		return err
	}
	logger.Debug("config: %s", store.Path())

	configStore = store
	settingsService = services.NewSettingsService(store)
	return nil
}

// openConfigStore opens the TOML config in dir. When the default location
// cannot be used the run continues with defaults held in memory; an
// explicit --config-dir must work.
func openConfigStore(dir string) (driven.ConfigStore, error) {
	store, err := file.NewConfigStore(dir)
	if err == nil {
		return store, nil
	}
	if dir != "" {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Warn("using default settings: %v", err)
	return memory.NewConfigStore(nil), nil
}

// currentSettings returns the stored settings with the --backend flag
// applied on top.
func currentSettings() (*domain.Settings, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if backendFlag != "" {
		backend, err := domain.ParseBackend(backendFlag)
		if err != nil {
			return nil, fmt.Errorf("--backend: %w", err)
		}
		settings.Backend = backend
	}
	return settings, nil
}
