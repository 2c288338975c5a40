package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driven/samples"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/shell"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

var shellSample string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the interactive command loop",
	Long: `Run the numbered command loop:

  1 search, 2 insert, 3 update, 4 delete, 5 quit

On a terminal the shell asks for a backend (unless --backend is given) and
whether to start from a sample phone book (unless --sample is given).
When input is piped, prompts are not printed, the backend comes from the
configuration and the phone book starts empty unless --sample is given.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	addSampleFlag(shellCmd)
	rootCmd.AddCommand(shellCmd)
}

func addSampleFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&shellSample, "sample", "",
		"sample phone book to load: small, medium, large or none (default: ask)")
}

func runShell(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}

	interactive := isTerminal(cmd.InOrStdin())
	cfg := shell.Config{
		Sample:  shellSample,
		Prompts: interactive,
	}
	if backendFlag != "" || !interactive {
		cfg.Backend = settings.Backend
	}
	if cfg.Sample == "" && !interactive {
		cfg.Sample = shell.SampleNone
	}
	if cfg.Sample != shell.SampleNone && cfg.Sample != "" {
		if _, err := domain.ParseSampleSize(cfg.Sample); err != nil {
			return fmt.Errorf("--sample: %w", err)
		}
	}

	samplePath := func(size domain.SampleSize) (string, error) {
		return samples.Path(settings.SampleDir, size)
	}
	factory := func(backend domain.Backend) (*shell.Session, error) {
		return newSession(backend, false)
	}

	sh, err := shell.New(cfg, factory, samplePath, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return sh.Run(cmd.Context())
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
