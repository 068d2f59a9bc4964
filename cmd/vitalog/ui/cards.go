package ui

import (
	"fmt"
	"strings"

	"vitalog/internal/report"
)

// RenderCards renders the card history view: one bordered card per record,
// subcategories grouped under their category headings.
func RenderCards(cards []report.Card, styles Styles) string {
	if len(cards) == 0 {
		return styles.Muted.Render("Nenhum registro encontrado.") + "\n"
	}

	var sb strings.Builder
	for _, card := range cards {
		var body strings.Builder
		body.WriteString(styles.CardHeader.Render(fmt.Sprintf("%s  %s", card.Date, card.Time)))
		body.WriteString("\n")
		for _, group := range card.Groups {
			body.WriteString(styles.Group.Render(group.CategoryName))
			body.WriteString("\n")
			for _, sub := range group.Subs {
				body.WriteString("  " + styles.Body.Render(sub.Descriptor.SubcategoryName+": "))
				body.WriteString(styles.StatusStyle(sub.Status).Render(sub.Value))
				if sub.Note != "" {
					body.WriteString(styles.Muted.Render("  — " + sub.Note))
				}
				body.WriteString("\n")
			}
		}
		sb.WriteString(styles.Card.Render(strings.TrimRight(body.String(), "\n")))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderPagination renders the page button strip under the history list.
func RenderPagination(buttons []report.PageButton, styles Styles) string {
	if len(buttons) <= 1 {
		return ""
	}
	var parts []string
	for _, b := range buttons {
		switch {
		case b.Ellipsis:
			parts = append(parts, styles.Muted.Render("…"))
		case b.Current:
			parts = append(parts, styles.PageCurrent.Render(fmt.Sprintf("%d", b.Page)))
		default:
			parts = append(parts, styles.PageButton.Render(fmt.Sprintf("%d", b.Page)))
		}
	}
	return strings.Join(parts, " ")
}
