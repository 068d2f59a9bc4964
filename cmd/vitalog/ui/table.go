package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vitalog/internal/report"
)

// noteMark flags cells that carry a companion note.
const noteMark = "*"

// RenderTable renders the tabular history view: one row per record, one
// column per enabled subcategory, values colored by status. Cells with a
// note get a trailing marker.
func RenderTable(t report.Table, styles Styles) string {
	if len(t.Rows) == 0 {
		return styles.Muted.Render("Nenhum registro encontrado.") + "\n"
	}

	headers := []string{"Data", "Hora"}
	for _, col := range t.Columns {
		headers = append(headers, col.Label())
	}

	// column widths from headers and plain cell text
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	plain := make([][]string, len(t.Rows))
	for ri, row := range t.Rows {
		cells := []string{row.Date, row.Time}
		for _, c := range row.Cells {
			v := c.Value
			if c.Note != "" {
				v += noteMark
			}
			cells = append(cells, v)
		}
		plain[ri] = cells
		for i, cell := range cells {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	cellStyle := styles.Body.Padding(0, 1)
	sep := styles.Muted.Render("|")

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(headers)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := len(headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.RenderDivider(total) + "\n")

	for ri, row := range t.Rows {
		for i, cell := range plain[ri] {
			st := cellStyle
			if i >= 2 {
				st = styles.StatusStyle(row.Cells[i-2].Status).Padding(0, 1)
			}
			sb.WriteString(st.Width(widths[i]).Render(cell))
			if i < len(plain[ri])-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Muted.Render(noteMark+" possui observação") + "\n")

	return sb.String()
}
