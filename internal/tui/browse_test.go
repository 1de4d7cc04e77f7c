package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/phonebook/internal/directory"
	"github.com/jeanpaul/phonebook/internal/records"
)

func newTestPager(n int) *directory.Directory {
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, fmt.Sprintf("Last%d;First%d;Patr%d;Org;%d;%d", i, i, i, i, i))
	}
	return directory.New(records.New(lines), nil)
}

func press(m BrowseModel, msg tea.KeyMsg) (BrowseModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(BrowseModel), cmd
}

func TestBrowse_Paging(t *testing.T) {
	m := NewBrowseModel(newTestPager(25))

	if m.Page() != 1 {
		t.Fatalf("start page = %d, want 1", m.Page())
	}
	if view := m.View(); !strings.Contains(view, "Last0") || !strings.Contains(view, "page 1/3") {
		t.Errorf("first page view unexpected:\n%s", view)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Page() != 2 {
		t.Errorf("after right page = %d, want 2", m.Page())
	}
	if view := m.View(); !strings.Contains(view, "Last10") || strings.Contains(view, "Last0 ") {
		t.Errorf("second page view unexpected:\n%s", view)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	if m.Page() != 3 {
		t.Errorf("page should stop at the last one, got %d", m.Page())
	}

	for i := 0; i < 5; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if m.Page() != 1 {
		t.Errorf("page should stop at the first one, got %d", m.Page())
	}
}

func TestBrowse_SelectWithEnter(t *testing.T) {
	m := NewBrowseModel(newTestPager(25))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter should quit the browser")
	}
	r, ok := m.Selected()
	if !ok {
		t.Fatal("expected a selected record")
	}
	if r.Position != 11 {
		t.Errorf("selected position = %d, want 11", r.Position)
	}
}

func TestBrowse_Quit(t *testing.T) {
	m := NewBrowseModel(newTestPager(3))
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q should quit the browser")
	}
	if _, ok := m.Selected(); ok {
		t.Error("quitting should not select a record")
	}
}

func TestBrowse_Empty(t *testing.T) {
	m := NewBrowseModel(newTestPager(0))
	if !strings.Contains(m.View(), "No records") {
		t.Errorf("empty view unexpected:\n%s", m.View())
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Page() != 1 {
		t.Errorf("page = %d, want 1", m.Page())
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Selected(); ok {
		t.Error("nothing to select in an empty directory")
	}
}
