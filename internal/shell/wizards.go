// internal/shell/wizards.go
package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookshelf/internal/catalog"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// addWizard tracks the add-book dialogue.
type addWizard struct {
	step   int // 0: title, 1: author, 2: year
	title  string
	author string
}

// searchWizard tracks the search dialogue.
type searchWizard struct {
	step  int // 0: field, 1: keyword
	field string
}

// statusWizard tracks the change-status dialogue.
type statusWizard struct {
	step int // 0: id, 1: status
	id   int
}

func (m Model) handleAddInput(input string) (tea.Model, tea.Cmd) {
	switch m.add.step {
	case 0:
		title := strings.TrimSpace(input)
		if title == "" {
			m.errLine = "Title must not be empty."
			return m, nil
		}
		m.add.title = title
		m.add.step = 1
		m.input.Placeholder = "Author (optional)"
	case 1:
		m.add.author = strings.TrimSpace(input)
		m.add.step = 2
		m.input.Placeholder = "Year"
	case 2:
		// Non-numeric year is coerced to 0 ("unknown"), matching the shell's
		// contract of never handing the catalog a negative year.
		year := coerceYear(input)
		book, err := m.svc.Add(context.Background(), m.add.title, m.add.author, year)
		if err != nil {
			m.logger.Error("add failed", zap.Error(err))
			return m.withError(fmt.Sprintf("Could not add book: %v", err)), nil
		}
		return m.toMenu(fmt.Sprintf("Added: %s (%d), id %d", book.Title, book.Year, book.ID)), nil
	}
	return m, nil
}

func (m Model) handleRemoveInput(input string) (tea.Model, tea.Cmd) {
	id, err := parseID(input)
	if err != nil {
		m.errLine = "Invalid id. Enter a number."
		return m, nil
	}
	if err := m.svc.Remove(context.Background(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return m.toMenu(fmt.Sprintf("Book with id %d not found.", id)), nil
		}
		m.logger.Error("remove failed", zap.Error(err))
		return m.withError(fmt.Sprintf("Could not remove book: %v", err)), nil
	}
	return m.toMenu(fmt.Sprintf("Book with id %d removed.", id)), nil
}

func (m Model) handleSearchInput(input string) (tea.Model, tea.Cmd) {
	switch m.search.step {
	case 0:
		field := strings.ToLower(strings.TrimSpace(input))
		if field != "title" && field != "author" && field != "year" {
			m.errLine = "Field must be one of: title, author, year."
			return m, nil
		}
		m.search.field = field
		m.search.step = 1
		m.input.Placeholder = "Keyword"
	case 1:
		results, err := m.svc.Search(context.Background(), input, m.search.field)
		if err != nil {
			return m.withError(fmt.Sprintf("Search failed: %v", err)), nil
		}
		if len(results) == 0 {
			return m.toMenu(fmt.Sprintf("No books found for %q.", input)), nil
		}
		return m.toMenu(renderBooks(results)), nil
	}
	return m, nil
}

func (m Model) handleStatusInput(input string) (tea.Model, tea.Cmd) {
	switch m.status.step {
	case 0:
		id, err := parseID(input)
		if err != nil {
			m.errLine = "Invalid id. Enter a number."
			return m, nil
		}
		m.status.id = id
		m.status.step = 1
		m.input.Placeholder = "New status (AVAILABLE or CHECKED_OUT)"
	case 1:
		status, err := catalog.ParseStatus(strings.TrimSpace(input))
		if err != nil {
			m.errLine = "Invalid status. Use AVAILABLE or CHECKED_OUT."
			return m, nil
		}
		if err := m.svc.ChangeStatus(context.Background(), m.status.id, status); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return m.toMenu(fmt.Sprintf("Book with id %d not found.", m.status.id)), nil
			}
			m.logger.Error("status change failed", zap.Error(err))
			return m.withError(fmt.Sprintf("Could not change status: %v", err)), nil
		}
		return m.toMenu(fmt.Sprintf("Status of book %d changed to %s.", m.status.id, status)), nil
	}
	return m, nil
}

// withError returns to the menu with an error line instead of output.
func (m Model) withError(line string) Model {
	m = m.toMenu("")
	m.errLine = line
	return m
}
