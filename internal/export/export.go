// Package export builds CSV payloads from filtered record sets. The export
// selection is independent from the report's display selection: callers
// seed it from the current view and the user narrows it from there.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"vitalog/internal/report"
	"vitalog/internal/store"
	"vitalog/internal/taxonomy"
)

// Format names the requested output encoding. Only CSV is produced today;
// the other formats degrade to CSV rather than failing.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

// Scope selects which record set feeds the export.
type Scope string

const (
	// ScopeFiltered exports the records visible under the current report
	// filters.
	ScopeFiltered Scope = "filtered"
	// ScopeAll exports every record of the cycle.
	ScopeAll Scope = "all"
)

// ErrNoCategories is returned when the export selection is empty. Callers
// surface it as a validation message, not a failure.
var ErrNoCategories = errors.New("export: no categories selected")

// Options controls one export run.
type Options struct {
	// Selected holds the FullIDs to include as columns. Must be non-empty.
	Selected []string
	// IncludeNotes adds one note column per selected subcategory.
	IncludeNotes bool
	// FormatValues writes display labels (Excelente, Sim, the dash
	// placeholder) instead of raw stored values.
	FormatValues bool
	Scope        Scope
	Format       Format
}

// Result is a finished export payload plus the rows that went into it, kept
// for dry-run previews.
type Result struct {
	Filename string
	Payload  []byte
	Header   []string
	Rows     [][]string
	// Degraded is set when a non-CSV format was requested and CSV was
	// produced instead.
	Degraded bool
}

// Build produces the export for a record set. Records arrive pre-scoped;
// Build orders them newest first regardless of the report's current sort.
func Build(recs []store.Record, descs []taxonomy.Descriptor, opts Options, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cols := selectedColumns(descs, opts.Selected)
	if len(cols) == 0 {
		return nil, ErrNoCategories
	}

	res := &Result{}
	if opts.Format != FormatCSV && opts.Format != "" {
		log.Warn("format unavailable, writing csv instead", zap.String("format", string(opts.Format)))
		res.Degraded = true
	}

	// each note column sits right next to its value column
	res.Header = append(res.Header, "Data", "Hora")
	for _, c := range cols {
		res.Header = append(res.Header, c.Label())
		if opts.IncludeNotes {
			res.Header = append(res.Header, "Observações: "+c.Label())
		}
	}

	for _, rec := range report.SortRecords(recs, report.SortDateDesc) {
		row := make([]string, 0, len(res.Header))
		row = append(row, report.FormatDate(rec.RecordedAt), report.FormatTime(rec.RecordedAt))
		for _, c := range cols {
			entry := rec.Data[c.FullID]
			if opts.FormatValues {
				row = append(row, taxonomy.FormatValue(entry.Value, c.Type))
			} else {
				row = append(row, entry.Value.Raw())
			}
			if opts.IncludeNotes {
				row = append(row, entry.Note)
			}
		}
		res.Rows = append(res.Rows, row)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(res.Header); err != nil {
		return nil, fmt.Errorf("export: write header: %w", err)
	}
	if err := w.WriteAll(res.Rows); err != nil {
		return nil, fmt.Errorf("export: write rows: %w", err)
	}
	res.Payload = buf.Bytes()
	log.Debug("export built", zap.Int("rows", len(res.Rows)), zap.Int("columns", len(res.Header)))
	return res, nil
}

// Filename derives the download name from the cycle and the active date
// range: vitalog-<cycle>.csv, or vitalog-<cycle>-<start>-a-<end>.csv when
// both bounds are set.
func Filename(cycleID string, r report.DateRange) string {
	if r.IsBounded() {
		return fmt.Sprintf("vitalog-%s-%s-a-%s.csv", cycleID, r.Start, r.End)
	}
	return fmt.Sprintf("vitalog-%s.csv", cycleID)
}

// selectedColumns resolves the selected FullIDs against the cycle's
// descriptors, keeping column order stable by (category, subcategory) name
// like the table view. Unknown IDs are dropped.
func selectedColumns(descs []taxonomy.Descriptor, selected []string) []taxonomy.Descriptor {
	want := make(map[string]bool, len(selected))
	for _, id := range selected {
		want[id] = true
	}
	var out []taxonomy.Descriptor
	for _, d := range report.SortColumns(descs) {
		if want[d.FullID] {
			out = append(out, d)
		}
	}
	return out
}
