package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonebook-cli/internal/core/domain"
)

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()

	view := NewView(s, domain.BackendHash)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.items, 5)
	assert.Equal(t, 0, view.selected)
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_Items(t *testing.T) {
	view := NewView(nil, domain.BackendHash)

	labels := make([]string, 0, len(view.items))
	for _, item := range view.items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"Search", "Insert", "Update", "Delete", "Quit"}, labels)
	assert.True(t, view.items[4].Quit)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, domain.BackendList)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init(t *testing.T) {
	view := NewView(nil, domain.BackendHash)

	assert.Nil(t, view.Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, domain.BackendHash)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil, domain.BackendHash)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.selected)

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	for i := 0; i < 10; i++ {
		view.Update(j)
	}
	assert.Equal(t, 4, view.selected, "cannot move past the last item")

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 3, view.selected)

	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	for i := 0; i < 10; i++ {
		view.Update(k)
	}
	assert.Equal(t, 0, view.Selected(), "cannot move before the first item")
}

func TestView_Update_EnterSelectsOperation(t *testing.T) {
	tests := []struct {
		index int
		op    messages.Operation
	}{
		{0, messages.OpSearch},
		{1, messages.OpInsert},
		{2, messages.OpUpdate},
		{3, messages.OpDelete},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			view := NewView(nil, domain.BackendHash)
			view.selected = tt.index

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)

			msg := cmd()
			selected, ok := msg.(messages.OperationSelected)
			require.True(t, ok)
			assert.Equal(t, tt.op, selected.Op)
		})
	}
}

func TestView_Update_EnterOnQuit(t *testing.T) {
	view := NewView(nil, domain.BackendHash)
	view.selected = 4

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView_Update_QKeyQuits(t *testing.T) {
	view := NewView(nil, domain.BackendHash)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestView_View_NotReady(t *testing.T) {
	view := NewView(nil, domain.BackendHash)

	assert.Equal(t, "Initialising...", view.View())
}

func TestView_View_Ready(t *testing.T) {
	view := NewView(nil, domain.BackendList)
	view.SetDimensions(80, 24)

	out := view.View()

	assert.Contains(t, out, "Phone Book")
	assert.Contains(t, out, "List (linear scan)")
	assert.NotContains(t, out, "entries")
	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "Delete")
	assert.Contains(t, out, "> ")
}

func TestView_View_WithSize(t *testing.T) {
	view := NewView(nil, domain.BackendHash)
	view.SetDimensions(80, 24)
	view.SetSize(3)

	assert.Contains(t, view.View(), "3 entries")
}
