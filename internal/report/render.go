package report

import (
	"sort"

	"vitalog/internal/store"
	"vitalog/internal/taxonomy"
)

// CardSub is one subcategory slot on a card. Value is already formatted;
// absent values carry the placeholder dash.
type CardSub struct {
	Descriptor taxonomy.Descriptor
	Value      string
	Status     taxonomy.Status
	Note       string
}

// CardGroup is one category section of a card.
type CardGroup struct {
	CategoryID   string
	CategoryName string
	Subs         []CardSub
}

// Card is the display-ready projection of one record for the card view.
type Card struct {
	RecordID string
	Date     string
	Time     string
	Groups   []CardGroup
}

// BuildCards projects a page of records into cards. Every taxonomy
// subcategory gets a slot even when absent from the record; disabled
// subcategories are dropped, and a category whose subcategories are all
// disabled is skipped entirely.
func BuildCards(recs []store.Record, sel *Selection) []Card {
	cards := make([]Card, 0, len(recs))
	for _, rec := range recs {
		card := Card{
			RecordID: rec.ID,
			Date:     FormatDate(rec.RecordedAt),
			Time:     FormatTime(rec.RecordedAt),
		}
		var group *CardGroup
		for _, d := range sel.Descriptors() {
			if group == nil || group.CategoryID != d.CategoryID {
				if group != nil && len(group.Subs) > 0 {
					card.Groups = append(card.Groups, *group)
				}
				group = &CardGroup{CategoryID: d.CategoryID, CategoryName: d.CategoryName}
			}
			if !sel.IsEnabled(d.FullID) {
				continue
			}
			entry := rec.Data[d.FullID]
			group.Subs = append(group.Subs, CardSub{
				Descriptor: d,
				Value:      taxonomy.FormatValue(entry.Value, d.Type),
				Status:     taxonomy.StatusOf(entry.Value),
				Note:       entry.Note,
			})
		}
		if group != nil && len(group.Subs) > 0 {
			card.Groups = append(card.Groups, *group)
		}
		cards = append(cards, card)
	}
	return cards
}

// TableCell is one value cell of the table view. Note is the companion
// note for tooltip display; empty means no indicator.
type TableCell struct {
	Value  string
	Status taxonomy.Status
	Note   string
}

// TableRow is one record's row.
type TableRow struct {
	Date  string
	Time  string
	Cells []TableCell
}

// Table is the display-ready tabular projection of a page of records.
type Table struct {
	Columns []taxonomy.Descriptor
	Rows    []TableRow
}

// SortColumns orders descriptors by (category name, subcategory name), the
// column policy shared by the table view and the export pipeline.
func SortColumns(descs []taxonomy.Descriptor) []taxonomy.Descriptor {
	out := make([]taxonomy.Descriptor, len(descs))
	copy(out, descs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CategoryName != out[j].CategoryName {
			return out[i].CategoryName < out[j].CategoryName
		}
		return out[i].SubcategoryName < out[j].SubcategoryName
	})
	return out
}

// BuildTable projects a page of records into the table view. Columns are
// the enabled subcategories in lexicographic order; absent values render
// as the placeholder dash.
func BuildTable(recs []store.Record, sel *Selection) Table {
	t := Table{Columns: SortColumns(sel.Enabled())}
	for _, rec := range recs {
		row := TableRow{
			Date:  FormatDate(rec.RecordedAt),
			Time:  FormatTime(rec.RecordedAt),
			Cells: make([]TableCell, len(t.Columns)),
		}
		for i, col := range t.Columns {
			entry := rec.Data[col.FullID]
			row.Cells[i] = TableCell{
				Value:  taxonomy.FormatValue(entry.Value, col.Type),
				Status: taxonomy.StatusOf(entry.Value),
				Note:   entry.Note,
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
