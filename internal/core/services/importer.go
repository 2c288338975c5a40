package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driving"
	"github.com/custodia-labs/phonebook-cli/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// maxLineSize bounds a single record line.
const maxLineSize = 1024 * 1024

// ImportService bulk-loads "phoneNumber name" records into a directory.
type ImportService struct {
	directory driving.DirectoryService
}

// NewImportService creates an import service that adds into directory.
func NewImportService(directory driving.DirectoryService) *ImportService {
	return &ImportService{directory: directory}
}

// Import reads records from r and adds them in order.
// Blank and malformed lines are skipped; numbers already present are
// counted as duplicates and left unchanged.
func (s *ImportService) Import(ctx context.Context, r io.Reader) (domain.ImportReport, error) {
	var report domain.ImportReport

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Lines++

		phoneNumber, name, ok := parseRecord(scanner.Text())
		if !ok {
			report.Skipped++
			logger.Warn("line %d: malformed record skipped", report.Lines)
			continue
		}

		err := s.directory.Add(ctx, phoneNumber, name)
		switch {
		case err == nil:
			report.Added++
		case errors.Is(err, domain.ErrAlreadyExists):
			report.Duplicates++
		default:
			return report, fmt.Errorf("line %d: %w", report.Lines, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("reading records: %w", err)
	}

	logger.Info("imported %d of %d lines (%d duplicates, %d skipped)",
		report.Added, report.Lines, report.Duplicates, report.Skipped)
	return report, nil
}

// ImportFile imports the records stored at path.
func (s *ImportService) ImportFile(ctx context.Context, path string) (domain.ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ImportReport{}, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return domain.ImportReport{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	logger.Section("Import " + path)
	return s.Import(ctx, f)
}

// parseRecord splits a line into its phone number and name.
// The name is every field after the number, joined by single spaces.
func parseRecord(line string) (int, string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, "", false
	}
	phoneNumber, err := domain.ParsePhoneNumber(fields[0])
	if err != nil {
		return 0, "", false
	}
	return phoneNumber, strings.Join(fields[1:], " "), true
}
