package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driven/samples"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

var loadFollow bool

var loadCmd = &cobra.Command{
	Use:   "load FILE",
	Short: "Load a phone book file and time it",
	Long: `Load "phoneNumber name" records from FILE into an empty directory and
print how long the inserts took. Duplicate numbers keep the first name;
malformed lines are skipped and counted.

With --follow the file is watched and loaded again after each change until
interrupted. Reloading is safe because existing contacts are never
overwritten.

Examples:
  phonebook load phoneBook-large.txt -b list
  phonebook load contacts.txt --follow`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().BoolVarP(&loadFollow, "follow", "f", false, "reload the file whenever it changes")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}

	// The follow callback and the command share the directory.
	session, err := newSession(settings.Backend, loadFollow)
	if err != nil {
		return err
	}

	path := args[0]
	err = importFile(cmd, session, path, cmd.Println)
	switch {
	case err == nil:
	case loadFollow && errors.Is(err, domain.ErrNotFound):
		cmd.PrintErrf("%s does not exist yet.\n", path)
	default:
		return err
	}

	if !loadFollow {
		return nil
	}

	watcher := samples.NewWatcher(path)
	cmd.PrintErrf("Following %s (interrupt to stop).\n", watcher.Path())
	return watcher.Watch(cmd.Context(), func(changed string) {
		if err := importFile(cmd, session, changed, cmd.Println); err != nil {
			cmd.PrintErrf("Reload failed: %v\n", err)
		}
	})
}
