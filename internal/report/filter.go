// Package report implements the report/history engine: date filtering,
// sorting, pagination, category selection, chart projections and the view
// models consumed by the CLI surfaces.
package report

import (
	"sort"
	"time"

	"vitalog/internal/store"
)

// SortOrder selects how the filtered record set is ordered.
type SortOrder string

const (
	SortDateDesc   SortOrder = "date-desc"
	SortDateAsc    SortOrder = "date-asc"
	SortRatingDesc SortOrder = "rating-desc"
	SortRatingAsc  SortOrder = "rating-asc"
)

// DateRange carries the raw user-entered bounds in 2006-01-02 form.
type DateRange struct {
	Start string
	End   string
}

// dateLayout is the input format for range bounds.
const dateLayout = "2006-01-02"

// Bounds resolves the range into concrete times. Date filtering only
// applies when both bounds were entered; a bound that fails to parse leaves
// that side unbounded rather than erroring. The end bound is pushed to the
// end of its day so the range is inclusive.
func (r DateRange) Bounds() (start, end time.Time) {
	if r.Start == "" || r.End == "" {
		return time.Time{}, time.Time{}
	}
	if t, err := time.ParseInLocation(dateLayout, r.Start, time.Local); err == nil {
		start = t
	}
	if t, err := time.ParseInLocation(dateLayout, r.End, time.Local); err == nil {
		end = t.Add(24*time.Hour - time.Second)
	}
	return start, end
}

// IsBounded reports whether both bounds parse, i.e. the range actually
// narrows the record set.
func (r DateRange) IsBounded() bool {
	start, end := r.Bounds()
	return !start.IsZero() && !end.IsZero()
}

// FilterRecords narrows records to a cycle and date range in memory. The
// store applies the same rule in SQL; this variant serves callers that
// already hold a record slice.
func FilterRecords(recs []store.Record, cycleID string, r DateRange) []store.Record {
	start, end := r.Bounds()
	var out []store.Record
	for _, rec := range recs {
		if rec.CycleID != cycleID {
			continue
		}
		if !start.IsZero() && rec.RecordedAt.Before(start) {
			continue
		}
		if !end.IsZero() && rec.RecordedAt.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// AverageRating derives the scalar used for rating sorts: the mean of all
// numeric-coercible values in the record, 0 when there are none.
func AverageRating(rec store.Record) float64 {
	var sum float64
	var count int
	for _, entry := range rec.Data {
		if n, ok := entry.Value.Numeric(); ok {
			sum += n
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// OverallAverage is the mean of every numeric-coercible value across the
// whole record set, 0 when there are none. Shown in the period summary.
func OverallAverage(recs []store.Record) float64 {
	var sum float64
	var count int
	for _, rec := range recs {
		for _, entry := range rec.Data {
			if n, ok := entry.Value.Numeric(); ok {
				sum += n
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// SortRecords returns a sorted copy of records. Ties keep their incoming
// order; no secondary key is promised.
func SortRecords(recs []store.Record, order SortOrder) []store.Record {
	out := make([]store.Record, len(recs))
	copy(out, recs)

	switch order {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RecordedAt.Before(out[j].RecordedAt)
		})
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return AverageRating(out[i]) > AverageRating(out[j])
		})
	case SortRatingAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return AverageRating(out[i]) < AverageRating(out[j])
		})
	default: // SortDateDesc
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		})
	}
	return out
}
