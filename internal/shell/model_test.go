package shell

import (
	"context"
	"path/filepath"
	"testing"

	"bookshelf/internal/catalog"
	"bookshelf/pkg/bookfile"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestShell(t *testing.T) (Model, catalog.Service) {
	t.Helper()
	store := bookfile.NewStore(filepath.Join(t.TempDir(), "library.json"))
	svc := catalog.NewService(store, zap.NewNop())
	return New(svc, zap.NewNop()), svc
}

// submit feeds one line through the model as if the user pressed enter.
func submit(t *testing.T, m Model, line string) Model {
	t.Helper()
	next, _ := m.handleInput(line)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func TestMenuRejectsUnknownChoice(t *testing.T) {
	m, _ := newTestShell(t)

	m = submit(t, m, "9")
	assert.Equal(t, modeMenu, m.mode)
	assert.Contains(t, m.errLine, "Unknown option")
}

func TestAddWizardFlow(t *testing.T) {
	m, svc := newTestShell(t)

	m = submit(t, m, "1")
	require.Equal(t, modeAdd, m.mode)

	// Empty title is rejected locally and re-prompted.
	m = submit(t, m, "   ")
	assert.Equal(t, 0, m.add.step)
	assert.NotEmpty(t, m.errLine)

	m = submit(t, m, "The Go Programming Language")
	m = submit(t, m, "Donovan")
	// Non-numeric year coerces to 0 rather than failing.
	m = submit(t, m, "not a year")

	assert.Equal(t, modeMenu, m.mode)
	assert.Contains(t, m.output, "Added")

	books := svc.ListAll(context.Background())
	require.Len(t, books, 1)
	assert.Equal(t, "The Go Programming Language", books[0].Title)
	assert.Equal(t, 0, books[0].Year)
}

func TestRemoveRejectsNonNumericIDLocally(t *testing.T) {
	m, svc := newTestShell(t)
	_, err := svc.Add(context.Background(), "Keep", "", 2000)
	require.NoError(t, err)

	m = submit(t, m, "2")
	require.Equal(t, modeRemove, m.mode)

	m = submit(t, m, "abc")
	assert.Equal(t, modeRemove, m.mode)
	assert.NotEmpty(t, m.errLine)
	assert.Len(t, svc.ListAll(context.Background()), 1)
}

func TestRemoveReportsNotFound(t *testing.T) {
	m, _ := newTestShell(t)

	m = submit(t, m, "2")
	m = submit(t, m, "999")
	assert.Equal(t, modeMenu, m.mode)
	assert.Contains(t, m.output, "not found")
}

func TestStatusWizardRejectsInvalidStatus(t *testing.T) {
	m, svc := newTestShell(t)
	book, err := svc.Add(context.Background(), "Status Book", "", 2000)
	require.NoError(t, err)

	m = submit(t, m, "5")
	m = submit(t, m, "1")
	require.Equal(t, 1, m.status.step)

	m = submit(t, m, "lost")
	assert.NotEmpty(t, m.errLine)

	got, ok := svc.FindByID(context.Background(), book.ID)
	require.True(t, ok)
	assert.Equal(t, catalog.StatusAvailable, got.Status)
}

func TestSearchWizardFlow(t *testing.T) {
	m, svc := newTestShell(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "Python Basics", "C", 2021)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Cooking", "E", 2019)
	require.NoError(t, err)

	m = submit(t, m, "3")
	m = submit(t, m, "isbn")
	assert.NotEmpty(t, m.errLine)

	m = submit(t, m, "title")
	m = submit(t, m, "python")
	assert.Equal(t, modeMenu, m.mode)
	assert.Contains(t, m.output, "Python Basics")
	assert.NotContains(t, m.output, "Cooking")
}

func TestQuitFromMenu(t *testing.T) {
	m, _ := newTestShell(t)

	next, cmd := m.handleInput("6")
	got := next.(Model)
	assert.True(t, got.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
