package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green     = lipgloss.Color("#00FF41")
	MedGreen  = lipgloss.Color("#00C832")
	DarkGreen = lipgloss.Color("#008F11")
	DimGreen  = lipgloss.Color("#3B7A3B")
	Cyan      = lipgloss.Color("#00D4AA")
	Black     = lipgloss.Color("#0D0208")
	MidGray   = lipgloss.Color("#3a3a4e")
	White     = lipgloss.Color("#e0e0e0")

	// Banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Menu
	MenuNumberStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(White)

	PromptStyle = lipgloss.NewStyle().
			Foreground(MedGreen).
			Bold(true)

	// Page header, e.g. "=====2 page====="
	PageHeaderStyle = lipgloss.NewStyle().
			Foreground(DarkGreen).
			Bold(true)

	// Record tables
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(DarkGreen)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(Green).
				Bold(true).
				Padding(0, 1)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(White).
			Padding(0, 1)

	TablePositionStyle = TableCellStyle.
				Foreground(Cyan)

	// Status bar (browse)
	StatusBarStyle = lipgloss.NewStyle().
			Background(DarkGreen).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	// Informational messages, e.g. "no records"
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	// Diff after edit
	DiffStyle = lipgloss.NewStyle().
			Foreground(MidGray)

	// Error
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4136")).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DimGreen)
)

const Banner = `
  ┌─┐┬ ┬┌─┐┌┐┌┌─┐┌┐ ┌─┐┌─┐┬┌─
  ├─┘├─┤│ ││││├┤ ├┴┐│ ││ │├┴┐
  ┴  ┴ ┴└─┘┘└┘└─┘└─┘└─┘└─┘┴ ┴
`
