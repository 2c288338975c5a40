package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/shell"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/services"
)

// newSession builds an empty directory for backend and its importer.
// Shared sessions are safe to call from several goroutines; every driver
// that runs directory calls off its main loop (load --follow, the TUI and
// the MCP server) must ask for one.
func newSession(backend domain.Backend, shared bool) (*shell.Session, error) {
	book, err := memory.New(backend)
	if err != nil {
		return nil, err
	}
	if shared {
		book = memory.Synchronized(book)
	}

	directory := services.NewDirectoryService(book, backend)
	return &shell.Session{
		Directory: directory,
		Importer:  services.NewImportService(directory),
	}, nil
}

// importFile loads path into session and reports the timing line and a
// summary through print.
func importFile(cmd *cobra.Command, session *shell.Session, path string, print func(...any)) error {
	ctx := cmd.Context()

	start := time.Now()
	report, err := session.Importer.ImportFile(ctx, path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	print(shell.FormatElapsed(fmt.Sprintf("Adding %d entries", report.Added), time.Since(start)))
	summary := fmt.Sprintf("Read %d lines: %d added, %d duplicates, %d malformed.",
		report.Lines, report.Added, report.Duplicates, report.Skipped)
	if n := session.Directory.Len(ctx); n >= 0 {
		summary += fmt.Sprintf(" %d contacts in %s phone book.", n, session.Directory.Backend())
	}
	print(summary)
	return nil
}
