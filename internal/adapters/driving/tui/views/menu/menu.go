// Package menu provides the operation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	Op    messages.Operation
	Quit  bool // If true, selecting this item quits the app
}

// View represents the operation menu.
type View struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	backend  domain.Backend
	items    []Item
	selected int
	size     int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view for a directory of the given backend.
func NewView(s *styles.Styles, backend domain.Backend) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := make([]Item, 0, 5)
	for _, op := range []messages.Operation{
		messages.OpSearch, messages.OpInsert, messages.OpUpdate, messages.OpDelete,
	} {
		items = append(items, Item{Label: op.String(), Op: op})
	}
	items = append(items, Item{Label: "Quit", Quit: true})

	return &View{
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		backend: backend,
		items:   items,
		size:    -1,
		width:   80,
		height:  24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			if v.selected > 0 {
				v.selected--
			}
		case key.Matches(msg, v.keys.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case key.Matches(msg, v.keys.Select):
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.OperationSelected{Op: item.Op}
			}
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Phone Book"))
	b.WriteString("\n\n")

	subtitle := v.backend.Description()
	if v.size >= 0 {
		subtitle = fmt.Sprintf("%s, %d entries", subtitle, v.size)
	}
	b.WriteString(v.styles.Muted.Render(subtitle))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(keymap.HelpLine(v.keys.MenuHelp())))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// SetSize records the current number of entries shown in the subtitle.
// A negative size hides the count.
func (v *View) SetSize(n int) {
	v.size = n
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
