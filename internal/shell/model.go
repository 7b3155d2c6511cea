// Package shell implements the interactive menu over the catalog service.
// It performs presentation and local input validation only; all business
// logic lives behind catalog.Service.
package shell

import (
	"context"
	"fmt"

	"bookshelf/internal/catalog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type mode int

const (
	modeMenu mode = iota
	modeAdd
	modeRemove
	modeSearch
	modeStatus
)

// Model is the bubbletea model driving the menu loop.
type Model struct {
	svc    catalog.Service
	logger *zap.Logger

	input    textinput.Model
	mode     mode
	add      *addWizard
	search   *searchWizard
	status   *statusWizard
	output   string
	errLine  string
	quitting bool
}

// New creates the shell model in menu mode.
func New(svc catalog.Service, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Choose an option (1-6)"
	ti.Focus()
	ti.CharLimit = 256
	return Model{
		svc:    svc,
		logger: logger,
		input:  ti,
	}
}

// Run starts the interactive program and blocks until the user quits.
func Run(svc catalog.Service, logger *zap.Logger) error {
	p := tea.NewProgram(New(svc, logger))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			return m.toMenu(""), nil
		case tea.KeyEnter:
			value := m.input.Value()
			m.input.SetValue("")
			return m.handleInput(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleInput dispatches a submitted line based on the current mode.
func (m Model) handleInput(value string) (tea.Model, tea.Cmd) {
	m.errLine = ""
	switch m.mode {
	case modeMenu:
		return m.handleMenuChoice(value)
	case modeAdd:
		return m.handleAddInput(value)
	case modeRemove:
		return m.handleRemoveInput(value)
	case modeSearch:
		return m.handleSearchInput(value)
	case modeStatus:
		return m.handleStatusInput(value)
	}
	return m, nil
}

func (m Model) handleMenuChoice(choice string) (tea.Model, tea.Cmd) {
	switch choice {
	case "1":
		m.mode = modeAdd
		m.add = &addWizard{}
		m.input.Placeholder = "Title"
	case "2":
		m.mode = modeRemove
		m.input.Placeholder = "Book id"
	case "3":
		m.mode = modeSearch
		m.search = &searchWizard{}
		m.input.Placeholder = "Field (title, author, year)"
	case "4":
		books := m.svc.ListAll(context.Background())
		return m.toMenu(renderBooks(books)), nil
	case "5":
		m.mode = modeStatus
		m.status = &statusWizard{}
		m.input.Placeholder = "Book id"
	case "6", "q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	default:
		m.errLine = fmt.Sprintf("Unknown option %q. Choose 1-6.", choice)
	}
	return m, nil
}

// toMenu resets wizard state and returns to the menu, showing output if any.
func (m Model) toMenu(output string) Model {
	m.mode = modeMenu
	m.add = nil
	m.search = nil
	m.status = nil
	m.output = output
	m.input.Placeholder = "Choose an option (1-6)"
	m.input.SetValue("")
	return m
}
