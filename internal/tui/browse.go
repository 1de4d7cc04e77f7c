package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/phonebook/internal/records"
)

// Pager is the read side of a directory the browser needs.
type Pager interface {
	ListPage(page int) []records.Record
	Pages() int
	PageSize() int
}

// BrowseModel pages through a directory one page at a time.
type BrowseModel struct {
	src      Pager
	table    table.Model
	page     int
	current  []records.Record
	selected *records.Record
	width    int
}

func NewBrowseModel(src Pager) BrowseModel {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(DarkGreen).
		BorderBottom(true).
		Foreground(Green).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(Black).
		Background(Green).
		Bold(false)

	t := table.New(
		table.WithColumns(columnsFor(nil)),
		table.WithFocused(true),
		table.WithHeight(src.PageSize()+1),
		table.WithStyles(s),
	)

	m := BrowseModel{src: src, table: t, page: 1}
	m.load()
	return m
}

// columnsFor sizes each column to its widest cell.
func columnsFor(recs []records.Record) []table.Column {
	cols := make([]table.Column, len(Headers))
	for i, h := range Headers {
		cols[i] = table.Column{Title: h, Width: lipgloss.Width(h)}
	}
	for _, r := range recs {
		for i, cell := range tableRow(r) {
			cols[i].Width = max(cols[i].Width, lipgloss.Width(cell))
		}
	}
	return cols
}

func (m *BrowseModel) load() {
	m.current = m.src.ListPage(m.page)
	rows := make([]table.Row, 0, len(m.current))
	for _, r := range m.current {
		rows = append(rows, table.Row(tableRow(r)))
	}
	// Columns first: SetRows renders against the current column set.
	m.table.SetColumns(columnsFor(m.current))
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if c := m.table.Cursor(); c >= 0 && c < len(m.current) {
				r := m.current[c]
				m.selected = &r
				return m, tea.Quit
			}
			return m, nil
		case "right", "l", "n":
			if m.page < m.src.Pages() {
				m.page++
				m.load()
			}
			return m, nil
		case "left", "h", "p":
			if m.page > 1 {
				m.page--
				m.load()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Page reports the page on screen.
func (m BrowseModel) Page() int { return m.page }

// Selected returns the record picked with enter, if any.
func (m BrowseModel) Selected() (records.Record, bool) {
	if m.selected == nil {
		return records.Record{}, false
	}
	return *m.selected, true
}

func (m BrowseModel) View() string {
	if len(m.current) == 0 {
		return InfoStyle.Render("No records") + "\n" + HelpStyle.Render("q quit") + "\n"
	}

	status := StatusBarStyle.Render(fmt.Sprintf(" page %d/%d ", m.page, max(m.src.Pages(), 1)))
	help := HelpStyle.Render("←/→ page  ↑/↓ move  enter show  q quit")
	return m.table.View() + "\n" + status + " " + help + "\n"
}
