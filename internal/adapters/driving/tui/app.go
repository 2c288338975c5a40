package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/phonebook-cli/internal/adapters/driving/tui/views/menu"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles   *styles.Styles
	menuView *menu.View
	formView *form.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s, ports.Directory.Backend()),
		formView:    form.NewView(s, ports.Directory),
		currentView: messages.ViewMenu,
	}
	a.refreshSize()
	return a, nil
}

// WithContext sets the context for the app and its directory calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.formView.WithContext(ctx)
	a.refreshSize()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("phonebook"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.OperationSelected:
		a.currentView = messages.ViewForm
		return a, a.formView.Reset(msg.Op)

	case messages.BackToMenu:
		a.currentView = messages.ViewMenu
		a.refreshSize()
		return a, nil

	case messages.OperationCompleted:
		a.refreshSize()
		a.formView, cmd = a.formView.Update(msg)
		return a, cmd
	}

	switch a.currentView {
	case messages.ViewForm:
		a.formView, cmd = a.formView.Update(msg)
	default:
		a.menuView, cmd = a.menuView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewForm {
		return a.formView.View()
	}
	return a.menuView.View()
}

// refreshSize updates the entry count shown in the menu.
func (a *App) refreshSize() {
	a.menuView.SetSize(a.ports.Directory.Len(a.ctx))
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready reports whether the app has received its terminal dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.formView.SetDimensions(width, height)
}
