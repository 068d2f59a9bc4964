package report

import (
	"time"

	"vitalog/internal/store"
	"vitalog/internal/taxonomy"
)

// Chart size limits keep the rendered charts legible.
const (
	maxTrendSeries = 5
	maxRadarAxes   = 8
)

// TrendSeries is one line of the trend chart. Points align with the
// Trend.Labels axis; nil marks missing data and is never interpolated or
// zero-filled.
type TrendSeries struct {
	FullID string
	Label  string
	Points []*float64
}

// Trend is the chart-ready projection of the filtered set over time.
type Trend struct {
	Labels []string
	Series []TrendSeries
}

// ProjectTrend builds one series per enabled non-boolean subcategory (up to
// 5, in taxonomy order) over the records sorted ascending by date.
func ProjectTrend(recs []store.Record, sel *Selection) Trend {
	if len(recs) == 0 {
		return Trend{}
	}
	subs := plottable(sel, maxTrendSeries)
	sorted := SortRecords(recs, SortDateAsc)

	var t Trend
	t.Labels = make([]string, len(sorted))
	for i, rec := range sorted {
		t.Labels[i] = FormatDate(rec.RecordedAt)
	}
	for _, sub := range subs {
		series := TrendSeries{
			FullID: sub.FullID,
			Label:  sub.Label(),
			Points: make([]*float64, len(sorted)),
		}
		for i, rec := range sorted {
			if entry, ok := rec.Data[sub.FullID]; ok {
				if n, numeric := entry.Value.Numeric(); numeric {
					v := n
					series.Points[i] = &v
				}
			}
		}
		t.Series = append(t.Series, series)
	}
	return t
}

// Radar is the single-snapshot projection: one value per enabled
// non-boolean subcategory, taken from the most recent record.
type Radar struct {
	Labels []string
	Values []float64
}

// ProjectRadar builds the radar snapshot from the most recent record by
// date; ties keep the record that appears first in the filtered set.
// Missing values project to 0 — a different policy from the trend's nil
// points, preserved from the original behavior.
func ProjectRadar(recs []store.Record, sel *Selection) Radar {
	if len(recs) == 0 {
		return Radar{}
	}
	latest := recs[0]
	for _, rec := range recs[1:] {
		if rec.RecordedAt.After(latest.RecordedAt) {
			latest = rec
		}
	}

	var r Radar
	for _, sub := range plottable(sel, maxRadarAxes) {
		r.Labels = append(r.Labels, sub.Label())
		var v float64
		if entry, ok := latest.Data[sub.FullID]; ok {
			if n, numeric := entry.Value.Numeric(); numeric {
				v = n
			}
		}
		r.Values = append(r.Values, v)
	}
	return r
}

// plottable returns the enabled non-boolean subcategories in taxonomy
// order, capped at limit.
func plottable(sel *Selection, limit int) []taxonomy.Descriptor {
	var out []taxonomy.Descriptor
	for _, d := range sel.Enabled() {
		if d.Type == taxonomy.ValueBoolean {
			continue
		}
		out = append(out, d)
		if len(out) == limit {
			break
		}
	}
	return out
}

// FormatDate renders a timestamp as the journal's dd/mm/yyyy display date.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTime renders the time-of-day part of a timestamp.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}
