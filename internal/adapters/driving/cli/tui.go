package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/shell"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

var tuiFile string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface.

Pick an operation from the menu, type the phone number (and name for
insert and update), and press enter. The result and the time taken by the
directory call are shown under the form.

Controls:
  ↑/k, ↓/j - Navigate the menu
  Tab      - Next field
  Enter    - Select / Submit
  Esc      - Back to menu
  q        - Quit (from the menu)`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiFile, "file", "f", "", "phone book file to load before starting")
	rootCmd.AddCommand(tuiCmd)
}

// newTUISession builds the directory behind the TUI. Bubbletea runs every
// command on its own goroutine, so form submissions may overlap.
func newTUISession(backend domain.Backend) (*shell.Session, error) {
	return newSession(backend, true)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in TUI: %v\n%s", r, debug.Stack())
		}
	}()

	settings, err := currentSettings()
	if err != nil {
		return err
	}
	session, err := newTUISession(settings.Backend)
	if err != nil {
		return err
	}
	if tuiFile != "" {
		if err := importFile(cmd, session, tuiFile, cmd.PrintErrln); err != nil {
			return err
		}
	}

	app, err := tui.NewApp(tui.NewPorts(session.Directory))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
