// Package form provides the phone number and name entry view for the TUI.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/shell"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
	"github.com/custodia-labs/phonebook-cli/internal/core/ports/driving"
)

const (
	fieldNumber = iota
	fieldName
)

// View collects a phone number, and a name where the operation needs one,
// then runs the operation against the directory.
type View struct {
	ctx       context.Context
	styles    *styles.Styles
	keys      *keymap.KeyMap
	directory driving.DirectoryService
	clock     func() time.Time

	op     messages.Operation
	number textinput.Model
	name   textinput.Model
	focus  int
	result *messages.OperationCompleted

	width  int
	height int
	ready  bool
}

// NewView creates a new form view.
func NewView(s *styles.Styles, directory driving.DirectoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	number := textinput.New()
	number.Placeholder = "5551234"
	number.CharLimit = 20
	number.Width = 20

	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = 256
	name.Width = 40

	return &View{
		ctx:       context.Background(),
		styles:    s,
		keys:      keymap.DefaultKeyMap(),
		directory: directory,
		clock:     time.Now,
		number:    number,
		name:      name,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context passed to directory calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the form view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset prepares the form for an operation and focuses the number field.
func (v *View) Reset(op messages.Operation) tea.Cmd {
	v.op = op
	v.result = nil
	v.number.SetValue("")
	v.name.SetValue("")
	return v.focusField(fieldNumber)
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.OperationCompleted:
		v.result = &msg
		v.name.SetValue("")
		return v, v.focusField(fieldNumber)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return messages.BackToMenu{} }

		case key.Matches(msg, v.keys.Next):
			if !v.op.NeedsName() {
				return v, nil
			}
			return v, v.focusField(1 - v.focus)

		case key.Matches(msg, v.keys.Select):
			if v.focus == fieldNumber && v.op.NeedsName() {
				return v, v.focusField(fieldName)
			}
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	if v.focus == fieldName {
		v.name, cmd = v.name.Update(msg)
	} else {
		v.number, cmd = v.number.Update(msg)
	}
	return v, cmd
}

func (v *View) focusField(field int) tea.Cmd {
	v.focus = field
	if field == fieldName {
		v.number.Blur()
		return v.name.Focus()
	}
	v.name.Blur()
	return v.number.Focus()
}

// submit validates the number locally; invalid input never reaches the
// directory.
func (v *View) submit() tea.Cmd {
	phoneNumber, err := domain.ParsePhoneNumber(v.number.Value())
	if err != nil {
		v.result = &messages.OperationCompleted{
			Op:      v.op,
			Message: "Not a legal phone number.",
			Err:     err,
		}
		return nil
	}

	op := v.op
	name := v.name.Value()
	return func() tea.Msg {
		return v.run(op, phoneNumber, name)
	}
}

func (v *View) run(op messages.Operation, phoneNumber int, name string) messages.OperationCompleted {
	start := v.clock()
	var (
		text string
		err  error
	)

	switch op {
	case messages.OpSearch:
		var found string
		found, err = v.directory.Search(v.ctx, phoneNumber)
		text = fmt.Sprintf("Number %d belongs to %s.", phoneNumber, found)
	case messages.OpInsert:
		err = v.directory.Add(v.ctx, phoneNumber, name)
		text = fmt.Sprintf("Added contact: %d, %s.", phoneNumber, name)
	case messages.OpUpdate:
		var previous string
		previous, err = v.directory.Update(v.ctx, phoneNumber, name)
		text = fmt.Sprintf("Contact with phone number %d updated from '%s' to '%s'.", phoneNumber, previous, name)
	case messages.OpDelete:
		var removed string
		removed, err = v.directory.Remove(v.ctx, phoneNumber)
		text = fmt.Sprintf("Removed contact: %d, %s.", phoneNumber, removed)
	default:
		err = fmt.Errorf("%w: operation %d", domain.ErrUnsupportedType, op)
	}
	elapsed := v.clock().Sub(start)

	switch {
	case errors.Is(err, domain.ErrNotFound):
		text = fmt.Sprintf("Phone number %d does not exist.", phoneNumber)
	case errors.Is(err, domain.ErrAlreadyExists):
		existing, _ := v.directory.Search(v.ctx, phoneNumber) //nolint:errcheck // only used for the message
		text = fmt.Sprintf("Contact with phone number %d already exists (%s).", phoneNumber, existing)
	case err != nil:
		text = "Error: " + err.Error()
	}

	return messages.OperationCompleted{Op: op, Message: text, Err: err, Elapsed: elapsed}
}

// View renders the form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.op.String()))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Label.Render("Phone number"))
	b.WriteString(v.number.View())
	b.WriteString("\n")
	if v.op.NeedsName() {
		label := "Name"
		if v.op == messages.OpUpdate {
			label = "New name"
		}
		b.WriteString(v.styles.Label.Render(label))
		b.WriteString(v.name.View())
		b.WriteString("\n")
	}

	if v.result != nil {
		b.WriteString("\n")
		b.WriteString(v.renderResult())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keys.FormHelp())))

	return b.String()
}

func (v *View) renderResult() string {
	r := v.result
	switch {
	case errors.Is(r.Err, domain.ErrNotFound), errors.Is(r.Err, domain.ErrAlreadyExists):
		return v.styles.Warning.Render(r.Message) + "\n" + v.styles.Muted.Render(shell.FormatElapsed(r.Op.String(), r.Elapsed))
	case r.Err != nil:
		return v.styles.Error.Render(r.Message)
	default:
		return v.styles.Success.Render(r.Message) + "\n" + v.styles.Muted.Render(shell.FormatElapsed(r.Op.String(), r.Elapsed))
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Operation returns the operation the form is collecting input for.
func (v *View) Operation() messages.Operation {
	return v.op
}

// Result returns the outcome of the last submission, or nil.
func (v *View) Result() *messages.OperationCompleted {
	return v.result
}
