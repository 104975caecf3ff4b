package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows with aligned columns, used for catalogue listings.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string

	// RightAligned marks numeric columns by index.
	RightAligned map[int]bool
}

// NewTable creates a table with the given title and headers.
func NewTable(title string, headers ...string) *Table {
	return &Table{
		Title:        title,
		Headers:      headers,
		RightAligned: make(map[int]bool),
	}
}

// AlignRight right-aligns column i.
func (t *Table) AlignRight(i int) *Table {
	t.RightAligned[i] = true
	return t
}

// AddRow adds a row to the table. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// View renders the table, or the empty string when there are no rows.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	cellStyle := func(base lipgloss.Style, i int) lipgloss.Style {
		s := base.Padding(0, 1).Width(widths[i] + 2)
		if t.RightAligned[i] {
			s = s.Align(lipgloss.Right)
		}
		return s
	}
	sep := styles.Muted.Render("│")

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	cells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		cells[i] = cellStyle(styles.Bold, i).Render(h)
	}
	sb.WriteString(strings.Join(cells, sep))
	sb.WriteString("\n")

	total := len(t.Headers) - 1
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		for i, cell := range row {
			cells[i] = cellStyle(styles.Body, i).Render(cell)
		}
		sb.WriteString(strings.Join(cells, sep))
		sb.WriteString("\n")
	}

	return sb.String()
}
