// internal/shell/render.go
package shell

import (
	"fmt"
	"strconv"
	"strings"

	"bookshelf/internal/catalog"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	menuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

const menu = `1. Add a book
2. Remove a book
3. Search books
4. List all books
5. Change book status
6. Quit`

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("bookshelf"))
	b.WriteString("\n\n")

	if m.output != "" {
		b.WriteString(outputStyle.Render(m.output))
		b.WriteString("\n\n")
	}

	if m.mode == modeMenu {
		b.WriteString(menuStyle.Render(menu))
		b.WriteString("\n\n")
	} else {
		b.WriteString(promptStyle.Render(m.promptLine()))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.errLine != "" {
		b.WriteString(errorStyle.Render(m.errLine))
		b.WriteString("\n")
	}

	b.WriteString(menuStyle.Render("(esc: back to menu, ctrl+c: quit)"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) promptLine() string {
	switch m.mode {
	case modeAdd:
		return "Add a book"
	case modeRemove:
		return "Remove a book"
	case modeSearch:
		return "Search books"
	case modeStatus:
		return "Change book status"
	}
	return ""
}

// renderBooks formats a result set one book per line, in the order given.
func renderBooks(books []catalog.Book) string {
	if len(books) == 0 {
		return "The catalog is empty."
	}
	lines := make([]string, len(books))
	for i, b := range books {
		lines[i] = fmt.Sprintf("ID: %d | Title: %s | Author: %s | Year: %d | Status: %s",
			b.ID, b.Title, b.Author, b.Year, b.Status)
	}
	return strings.Join(lines, "\n")
}

// parseID parses a user-entered id, rejecting anything non-numeric so the
// catalog never sees a malformed id from the shell.
func parseID(input string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(input))
}

// coerceYear turns user input into a year, mapping anything non-numeric or
// negative to 0 ("unknown").
func coerceYear(input string) int {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || year < 0 {
		return 0
	}
	return year
}
