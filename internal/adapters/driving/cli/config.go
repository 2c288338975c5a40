package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default settings",
	Long: `View and change the defaults stored in the config file.

Flags such as --backend override these values for a single run.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configBackendCmd = &cobra.Command{
	Use:   "backend hash|list",
	Short: "Set the default backend",
	Long: `Set the directory backend used when --backend is not given.

Available backends:
  hash - hash index keyed by phone number
  list - unordered list scanned on every call`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigBackend,
}

var configSamplesCmd = &cobra.Command{
	Use:   "samples DIR",
	Short: "Set the directory holding the sample phone books",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSamples,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configBackendCmd)
	configCmd.AddCommand(configSamplesCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Directory]")
	cmd.Printf("  Backend: %s (%s)\n", settings.Backend, settings.Backend.Description())
	cmd.Println()

	cmd.Println("[Samples]")
	cmd.Printf("  Directory: %s\n", settings.SampleDir)
	cmd.Println()

	if configStore != nil {
		cmd.Printf("Config file: %s\n", configStore.Path())
	}
	return nil
}

func runConfigBackend(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend, err := domain.ParseBackend(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetBackend(backend); err != nil {
		return fmt.Errorf("failed to save backend: %w", err)
	}

	cmd.Printf("Default backend set to %s (%s).\n", backend, backend.Description())
	return nil
}

func runConfigSamples(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetSampleDir(args[0]); err != nil {
		return fmt.Errorf("failed to save sample directory: %w", err)
	}

	cmd.Printf("Sample directory set to %s.\n", args[0])
	return nil
}
