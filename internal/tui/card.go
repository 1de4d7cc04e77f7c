package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeanpaul/phonebook/internal/records"
)

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"|", `\|`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
)

// CardMarkdown describes a single record as a markdown document.
func CardMarkdown(r records.Record) string {
	var b strings.Builder

	name := strings.TrimSpace(strings.Join([]string{r.LastName, r.FirstName, r.Patronymic}, " "))
	if name == "" {
		name = "(no name)"
	}
	fmt.Fprintf(&b, "# %s\n\n", mdEscaper.Replace(name))
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| No. | %d |\n", r.Position)
	for _, kv := range [][2]string{
		{"Organization", r.Organization},
		{"Work phone", r.WorkPhone},
		{"Personal phone", r.PersonalPhone},
	} {
		value := mdEscaper.Replace(kv[1])
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", kv[0], value)
	}
	return b.String()
}

// RenderCard renders CardMarkdown through glamour. style is a glamour
// standard style name such as "dark", "light" or "notty"; "" and "auto"
// detect the terminal background.
func RenderCard(r records.Record, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("card renderer: %w", err)
	}
	out, err := renderer.Render(CardMarkdown(r))
	if err != nil {
		return "", fmt.Errorf("render card %d: %w", r.Position, err)
	}
	return out, nil
}
