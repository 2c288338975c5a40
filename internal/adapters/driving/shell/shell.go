package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/logger"
)

// usage lists the commands understood by the loop.
const usage = "Usage: 1 (search), 2 (insert), 3 (update), 4 (delete) or 5 (quit)."

// SampleNone skips the sample prompt and starts with an empty phone book.
const SampleNone = "none"

// Config controls the startup questions and prompt output.
type Config struct {
	// Backend is used without asking when set.
	Backend domain.Backend

	// Sample is "" to ask, SampleNone to start empty, or a sample size
	// ("small", "medium", "large") to load without asking.
	Sample string

	// Prompts prints the input prompts. Disable when input is not a
	// terminal so scripted output stays readable.
	Prompts bool
}

// Shell runs the interactive command loop.
type Shell struct {
	cfg        Config
	factory    Factory
	samplePath SamplePathFunc

	in    *bufio.Reader
	out   io.Writer
	clock func() time.Time

	session *Session
}

// New creates a shell reading commands from in and writing to out.
func New(cfg Config, factory Factory, samplePath SamplePathFunc, in io.Reader, out io.Writer) (*Shell, error) {
	if factory == nil {
		return nil, ErrMissingFactory
	}
	return &Shell{
		cfg:        cfg,
		factory:    factory,
		samplePath: samplePath,
		in:         bufio.NewReader(in),
		out:        out,
		clock:      time.Now,
	}, nil
}

// Run asks the startup questions and processes commands until quit or
// end of input.
func (s *Shell) Run(ctx context.Context) error {
	backend, err := s.chooseBackend()
	if err != nil {
		return ignoreEOF(err)
	}

	if err := s.newSession(backend); err != nil {
		return err
	}
	logger.Section("Shell (" + backend.Description() + ")")

	if err := s.readPhoneBook(ctx, backend); err != nil {
		return ignoreEOF(err)
	}

	s.printHelp()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.prompt("Choose query type (or press ENTER for help): ")
		query, err := s.readLine()
		if err != nil {
			return ignoreEOF(err)
		}

		switch strings.TrimSpace(query) {
		case "1":
			err = s.search(ctx)
		case "2":
			err = s.insert(ctx)
		case "3":
			err = s.update(ctx)
		case "4":
			err = s.remove(ctx)
		case "5":
			return nil
		default:
			s.printHelp()
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Shell) newSession(backend domain.Backend) error {
	session, err := s.factory(backend)
	if err != nil {
		return fmt.Errorf("creating %s phone book: %w", backend, err)
	}
	s.session = session
	return nil
}

func (s *Shell) chooseBackend() (domain.Backend, error) {
	if s.cfg.Backend != "" {
		return s.cfg.Backend, nil
	}

	s.prompt("Select (h)ashing or (l)ist: ")
	for {
		input, err := s.readLine()
		if err != nil {
			return "", err
		}
		if backend, err := domain.ParseBackend(input); err == nil {
			return backend, nil
		}
		s.prompt("Invalid input. Please answer h/l. ")
	}
}

// readPhoneBook optionally fills the new directory from a sample file.
func (s *Shell) readPhoneBook(ctx context.Context, backend domain.Backend) error {
	size, load, err := s.chooseSample()
	if err != nil {
		return err
	}
	if !load {
		s.println("Starting with empty phone book.")
		return nil
	}

	s.println("Reading phone book from file.")
	if s.samplePath == nil {
		s.println("No sample directory configured. Starting with empty phone book.")
		return nil
	}
	path, err := s.samplePath(size)
	if err != nil {
		return err
	}

	start := s.clock()
	report, err := s.session.Importer.ImportFile(ctx, path)
	if err != nil {
		logger.Warn("loading %s: %v", path, err)
		if errors.Is(err, domain.ErrNotFound) {
			s.println("File not found. Starting with empty phone book.")
		} else {
			s.println("Unable to read file. Starting with empty phone book.")
		}
		// A partial load must not leak into the session.
		return s.newSession(backend)
	}
	s.printElapsed(fmt.Sprintf("Adding %d entries", report.Added), start)
	if report.Duplicates > 0 || report.Skipped > 0 {
		s.printf("Ignored %d duplicate and %d malformed lines.\n", report.Duplicates, report.Skipped)
	}
	return nil
}

// chooseSample returns the sample to load, or load=false for an empty book.
func (s *Shell) chooseSample() (domain.SampleSize, bool, error) {
	switch s.cfg.Sample {
	case SampleNone:
		return "", false, nil
	case "":
	default:
		size, err := domain.ParseSampleSize(s.cfg.Sample)
		if err != nil {
			return "", false, err
		}
		return size, true, nil
	}

	s.prompt("Start with sample phone book? [y/n] ")
	for {
		input, err := s.readLine()
		if err != nil {
			return "", false, err
		}
		answer := strings.ToLower(strings.TrimSpace(input))
		if strings.HasPrefix(answer, "n") {
			return "", false, nil
		}
		if strings.HasPrefix(answer, "y") {
			break
		}
		s.prompt("Invalid input. Please answer y/n. ")
	}

	s.prompt("Select (s)mall, (m)edium, or (l)arge: ")
	for {
		input, err := s.readLine()
		if err != nil {
			return "", false, err
		}
		if size, err := domain.ParseSampleSize(input); err == nil {
			return size, true, nil
		}
		s.prompt("Invalid input. Please answer s/m/l. ")
	}
}

// readPhoneNumber prompts for a number; ok is false after printing a
// rejection for non-numeric input.
func (s *Shell) readPhoneNumber() (int, bool, error) {
	s.prompt("Enter phone number: ")
	input, err := s.readLine()
	if err != nil {
		return 0, false, err
	}
	phoneNumber, err := domain.ParsePhoneNumber(input)
	if err != nil {
		s.println("Not a legal phone number.")
		return 0, false, nil
	}
	return phoneNumber, true, nil
}

func (s *Shell) search(ctx context.Context) error {
	s.println("Search for contact.")
	phoneNumber, ok, err := s.readPhoneNumber()
	if err != nil || !ok {
		return err
	}

	start := s.clock()
	name, err := s.session.Directory.Search(ctx, phoneNumber)
	s.printElapsed("Search", start)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.printf("Phone number %d does not exist.\n", phoneNumber)
	case err != nil:
		s.printf("Error: %v\n", err)
	default:
		s.printf("Search successful: Number %d belongs to %s.\n", phoneNumber, name)
	}
	return nil
}

func (s *Shell) insert(ctx context.Context) error {
	s.println("New contact.")
	phoneNumber, ok, err := s.readPhoneNumber()
	if err != nil || !ok {
		return err
	}
	s.prompt("Enter name: ")
	name, err := s.readLine()
	if err != nil {
		return err
	}

	start := s.clock()
	err = s.session.Directory.Add(ctx, phoneNumber, name)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		existing, _ := s.session.Directory.Search(ctx, phoneNumber) //nolint:errcheck // only used for the message
		s.printf("Contact with phone number %d already exists (%s).\n", phoneNumber, existing)
	case err != nil:
		s.printf("Error: %v\n", err)
	default:
		s.printf("Added contact: %d, %s.\n", phoneNumber, name)
	}
	s.printElapsed("Insert", start)
	return nil
}

func (s *Shell) update(ctx context.Context) error {
	s.println("Update contact.")
	phoneNumber, ok, err := s.readPhoneNumber()
	if err != nil || !ok {
		return err
	}
	s.prompt("Enter new name: ")
	name, err := s.readLine()
	if err != nil {
		return err
	}

	start := s.clock()
	previous, err := s.session.Directory.Update(ctx, phoneNumber, name)
	s.printElapsed("Update", start)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.printf("Phone number %d does not exist.\n", phoneNumber)
	case err != nil:
		s.printf("Error: %v\n", err)
	default:
		s.printf("Contact with phone number %d updated from '%s' to '%s'.\n", phoneNumber, previous, name)
	}
	return nil
}

func (s *Shell) remove(ctx context.Context) error {
	s.println("Remove contact.")
	phoneNumber, ok, err := s.readPhoneNumber()
	if err != nil || !ok {
		return err
	}

	start := s.clock()
	name, err := s.session.Directory.Remove(ctx, phoneNumber)
	s.printElapsed("Remove", start)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.printf("Phone number %d does not exist.\n", phoneNumber)
	case err != nil:
		s.printf("Error: %v\n", err)
	default:
		s.printf("Removed contact: %d, %s.\n", phoneNumber, name)
	}
	return nil
}

// readLine returns the next input line without its line ending.
// A final line without a newline is returned before io.EOF.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) printHelp() {
	s.println(usage)
}

func (s *Shell) printElapsed(prefix string, start time.Time) {
	s.println(FormatElapsed(prefix, s.clock().Sub(start)))
}

func (s *Shell) prompt(text string) {
	if s.cfg.Prompts {
		fmt.Fprint(s.out, text)
	}
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// FormatElapsed renders a duration the way the shell reports timings:
// "Search: 0.012000 milliseconds (0.000012 seconds)."
func FormatElapsed(prefix string, d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	return fmt.Sprintf("%s: %.6f milliseconds (%.6f seconds).", prefix, ms, ms/1000.0)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
