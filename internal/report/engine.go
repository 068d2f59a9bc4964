package report

import (
	"time"

	"go.uber.org/zap"

	"vitalog/internal/store"
	"vitalog/internal/taxonomy"
)

// View selects the history presentation mode.
type View string

const (
	ViewCards View = "cards"
	ViewTable View = "table"
)

// DefaultPerPage matches the original history page size.
const DefaultPerPage = 10

// Session identifies the profile the engine reads for. Explicit rather
// than ambient so independent engines can serve different profiles.
type Session struct {
	ProfileKey  string
	ProfileName string
}

// Context is the mutable view state of one report surface: cycle, date
// range, sort, pagination and category selection. It is never persisted.
type Context struct {
	CycleID   string
	Range     DateRange
	Sort      SortOrder
	View      View
	Page      int
	PerPage   int
	Selection *Selection
}

// Engine derives report snapshots from the record store and taxonomy. It
// owns no record data; every snapshot is recomputed in full from the
// latest committed context, so a stale in-flight view can never leak into
// a newer one.
type Engine struct {
	store *store.Store
	tax   *taxonomy.Table
	log   *zap.Logger
}

// New builds an engine. A nil logger is replaced with a no-op.
func New(st *store.Store, tax *taxonomy.Table, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: st, tax: tax, log: log}
}

// Taxonomy exposes the reference table bound to this engine.
func (e *Engine) Taxonomy() *taxonomy.Table {
	return e.tax
}

// NewContext builds the initial view state for a cycle: trailing month
// range, newest-first, card view, all categories enabled.
func (e *Engine) NewContext(cycleID string) *Context {
	now := time.Now()
	return &Context{
		CycleID:   cycleID,
		Range:     DateRange{Start: now.AddDate(0, -1, 0).Format(dateLayout), End: now.Format(dateLayout)},
		Sort:      SortDateDesc,
		View:      ViewCards,
		Page:      1,
		PerPage:   DefaultPerPage,
		Selection: NewSelection(e.tax.AllSubcategories(cycleID)),
	}
}

// SwitchCycle moves the context to another cycle, resetting the selection
// to all-enabled for the new cycle's descriptors and returning to page 1.
// A no-op when the cycle is unchanged.
func (e *Engine) SwitchCycle(ctx *Context, cycleID string) {
	if ctx.CycleID == cycleID {
		return
	}
	ctx.CycleID = cycleID
	ctx.Page = 1
	ctx.Selection.Reset(e.tax.AllSubcategories(cycleID))
	e.log.Debug("cycle switched", zap.String("cycle", cycleID))
}

// Snapshot is one fully-derived report state: the filtered and sorted
// record set plus every projection over it. All fields are consistent with
// each other by construction.
type Snapshot struct {
	Filtered []store.Record
	Page     Page
	Buttons  []PageButton
	Cards    []Card
	Table    Table
	Trend    Trend
	Radar    Radar
}

// Refresh recomputes the full snapshot from the latest context. A failed
// store read is logged and treated as an empty record set, never
// propagated.
func (e *Engine) Refresh(sess Session, ctx *Context) *Snapshot {
	start, end := ctx.Range.Bounds()
	recs, err := e.store.Records(sess.ProfileKey, ctx.CycleID, start, end)
	if err != nil {
		e.log.Error("store read failed, rendering empty report", zap.Error(err))
		recs = nil
	}

	sorted := SortRecords(recs, ctx.Sort)
	page := Paginate(sorted, ctx.Page, ctx.PerPage)
	ctx.Page = page.Number // clamp feedback

	snap := &Snapshot{
		Filtered: sorted,
		Page:     page,
		Buttons:  PageButtons(page.Number, page.Total),
		Cards:    BuildCards(page.Records, ctx.Selection),
		Table:    BuildTable(page.Records, ctx.Selection),
		Trend:    ProjectTrend(sorted, ctx.Selection),
		Radar:    ProjectRadar(sorted, ctx.Selection),
	}
	e.log.Debug("report refreshed",
		zap.String("cycle", ctx.CycleID),
		zap.Int("records", len(sorted)),
		zap.Int("page", page.Number),
		zap.Int("pages", page.Total))
	return snap
}

// AllRecords returns every record of the cycle regardless of the context's
// date range. Used by the export pipeline's all-records scope; failures
// degrade to an empty set like Refresh.
func (e *Engine) AllRecords(sess Session, cycleID string) []store.Record {
	recs, err := e.store.Records(sess.ProfileKey, cycleID, time.Time{}, time.Time{})
	if err != nil {
		e.log.Error("store read failed, exporting empty set", zap.Error(err))
		return nil
	}
	return recs
}
