package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
)

// RenderContacts writes entries as an aligned table in their current order.
// Column widths are measured in terminal cells so CJK names stay aligned.
func (t *Translator) RenderContacts(w io.Writer, entries []engine.BirthdayEntry) error {
	header := []string{
		t.Msg(config.TKeyColName),
		t.Msg(config.TKeyColDate),
		t.Msg(config.TKeyColAge),
		t.Msg(config.TKeyColZodiac),
		t.Msg(config.TKeyColAnimal),
	}
	rows := make([][]string, 0, len(entries))
	for _, c := range entries {
		rows = append(rows, contactRow(c))
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	bold := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	p := &printer{w: w}
	p.line(bold.Render(formatRow(header, widths)))
	for _, row := range rows {
		p.line(formatRow(row, widths))
	}
	return p.err
}

func contactRow(c engine.BirthdayEntry) []string {
	age := config.AgeUnknown
	if c.YearKnown {
		age = fmt.Sprint(c.AgeNext)
		if c.AgeNext > 0 {
			// Show the transition: "25 → 26"
			age = fmt.Sprintf(config.FormatAgeTransition, c.AgeNext-1, c.AgeNext)
		}
	}
	animal := c.Animal
	if animal == "" {
		animal = config.AgeUnknown
	}
	return []string{
		c.Name,
		c.NextOccurrence.Format(config.DateFormatDisplay),
		age,
		c.Zodiac,
		animal,
	}
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(config.ColumnGap)
		}
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
	}
	return strings.TrimRight(b.String(), " ")
}
