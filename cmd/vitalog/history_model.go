package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vitalog/cmd/vitalog/ui"
	"vitalog/internal/report"
	"vitalog/internal/taxonomy"
)

// historyModel drives the interactive browser. All state changes go
// through the context; every keypress that changes it triggers a full
// snapshot refresh, so the visible page, charts and selection can never
// disagree with each other.
type historyModel struct {
	eng  *report.Engine
	sess report.Session
	ctx  *report.Context
	snap *report.Snapshot

	styles ui.Styles
	cursor int // index into ctx.Selection.Descriptors()

	filtering  bool
	filterFrom textinput.Model
	filterTo   textinput.Model
	filterSlot int // 0 = from, 1 = to

	width  int
	height int
}

func newHistoryModel(eng *report.Engine, sess report.Session, ctx *report.Context, styles ui.Styles) *historyModel {
	from := textinput.New()
	from.Placeholder = "AAAA-MM-DD"
	from.CharLimit = 10
	from.Width = 12
	to := textinput.New()
	to.Placeholder = "AAAA-MM-DD"
	to.CharLimit = 10
	to.Width = 12

	m := &historyModel{
		eng:        eng,
		sess:       sess,
		ctx:        ctx,
		styles:     styles,
		filterFrom: from,
		filterTo:   to,
	}
	m.refresh()
	return m
}

func (m *historyModel) refresh() {
	m.snap = m.eng.Refresh(m.sess, m.ctx)
}

func (m *historyModel) Init() tea.Cmd {
	return nil
}

func (m *historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *historyModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "v":
		if m.ctx.View == report.ViewCards {
			m.ctx.View = report.ViewTable
		} else {
			m.ctx.View = report.ViewCards
		}

	case "s":
		m.ctx.Sort = nextSort(m.ctx.Sort)
		m.ctx.Page = 1
		m.refresh()

	case "left", "h":
		if m.ctx.Page > 1 {
			m.ctx.Page--
			m.refresh()
		}

	case "right", "l":
		if m.ctx.Page < m.snap.Page.Total {
			m.ctx.Page++
			m.refresh()
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.ctx.Selection.Len()-1 {
			m.cursor++
		}

	case " ":
		if d, ok := m.cursorDescriptor(); ok {
			m.ctx.Selection.SetEnabled(d.FullID, !m.ctx.Selection.IsEnabled(d.FullID))
			m.refresh()
		}

	case "g":
		if d, ok := m.cursorDescriptor(); ok {
			on := m.ctx.Selection.CategoryState(d.CategoryID) != report.GroupAll
			m.ctx.Selection.SetCategory(d.CategoryID, on)
			m.refresh()
		}

	case "a":
		m.ctx.Selection.EnableAll()
		m.refresh()

	case "n":
		m.ctx.Selection.DisableAll()
		m.refresh()

	case "c":
		m.eng.SwitchCycle(m.ctx, m.nextCycle())
		m.cursor = 0
		m.refresh()

	case "f":
		m.filtering = true
		m.filterSlot = 0
		m.filterFrom.SetValue(m.ctx.Range.Start)
		m.filterTo.SetValue(m.ctx.Range.End)
		m.filterFrom.Focus()
		m.filterTo.Blur()
	}
	return m, nil
}

func (m *historyModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		return m, nil

	case "tab":
		m.filterSlot = 1 - m.filterSlot
		if m.filterSlot == 0 {
			m.filterFrom.Focus()
			m.filterTo.Blur()
		} else {
			m.filterTo.Focus()
			m.filterFrom.Blur()
		}
		return m, nil

	case "enter":
		m.ctx.Range = report.DateRange{
			Start: strings.TrimSpace(m.filterFrom.Value()),
			End:   strings.TrimSpace(m.filterTo.Value()),
		}
		m.ctx.Page = 1
		m.filtering = false
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	if m.filterSlot == 0 {
		m.filterFrom, cmd = m.filterFrom.Update(msg)
	} else {
		m.filterTo, cmd = m.filterTo.Update(msg)
	}
	return m, cmd
}

func (m *historyModel) cursorDescriptor() (taxonomy.Descriptor, bool) {
	descs := m.ctx.Selection.Descriptors()
	if m.cursor < 0 || m.cursor >= len(descs) {
		return taxonomy.Descriptor{}, false
	}
	return descs[m.cursor], true
}

// nextCycle returns the cycle after the current one in taxonomy order,
// wrapping around.
func (m *historyModel) nextCycle() string {
	cycles := m.eng.Taxonomy().Cycles()
	for i, c := range cycles {
		if c.ID == m.ctx.CycleID {
			return cycles[(i+1)%len(cycles)].ID
		}
	}
	return m.ctx.CycleID
}

func nextSort(s report.SortOrder) report.SortOrder {
	switch s {
	case report.SortDateDesc:
		return report.SortDateAsc
	case report.SortDateAsc:
		return report.SortRatingDesc
	case report.SortRatingDesc:
		return report.SortRatingAsc
	default:
		return report.SortDateDesc
	}
}

func sortLabel(s report.SortOrder) string {
	switch s {
	case report.SortDateAsc:
		return "data ↑"
	case report.SortRatingDesc:
		return "média ↓"
	case report.SortRatingAsc:
		return "média ↑"
	default:
		return "data ↓"
	}
}

func (m *historyModel) View() string {
	var sb strings.Builder

	cycle, _ := m.eng.Taxonomy().Cycle(m.ctx.CycleID)
	title := fmt.Sprintf("Histórico — %s — %s", m.sess.ProfileName, cycle.Name)
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n")

	period := "todos os registros"
	if m.ctx.Range.IsBounded() {
		period = m.ctx.Range.Start + " a " + m.ctx.Range.End
	}
	sb.WriteString(m.styles.Subtitle.Render(fmt.Sprintf(
		"%d registros · período: %s · ordem: %s · média: %.1f",
		len(m.snap.Filtered), period, sortLabel(m.ctx.Sort),
		report.OverallAverage(m.snap.Filtered))))
	sb.WriteString("\n\n")

	if m.filtering {
		sb.WriteString(m.styles.Bold.Render("Filtrar período") + "\n")
		sb.WriteString("  De:  " + m.filterFrom.View() + "\n")
		sb.WriteString("  Até: " + m.filterTo.View() + "\n")
		sb.WriteString(m.styles.Muted.Render("tab alterna, enter aplica, esc cancela") + "\n")
		return sb.String()
	}

	sb.WriteString(m.viewSelection())
	sb.WriteString("\n")

	if m.ctx.View == report.ViewCards {
		sb.WriteString(ui.RenderCards(m.snap.Cards, m.styles))
	} else {
		sb.WriteString(ui.RenderTable(m.snap.Table, m.styles))
	}

	if strip := ui.RenderPagination(m.snap.Buttons, m.styles); strip != "" {
		sb.WriteString("\n" + strip + "\n")
	}

	sb.WriteString("\n" + m.styles.Muted.Render(
		"tab visão · s ordem · ←/→ página · ↑/↓/espaço categorias · f filtro · c ciclo · q sair"))
	return sb.String()
}

// viewSelection renders the category checklist with derived group states.
func (m *historyModel) viewSelection() string {
	var sb strings.Builder
	sel := m.ctx.Selection
	lastCat := ""
	for i, d := range sel.Descriptors() {
		if d.CategoryID != lastCat {
			lastCat = d.CategoryID
			var mark string
			switch sel.CategoryState(d.CategoryID) {
			case report.GroupAll:
				mark = m.styles.Checked.Render("[x]")
			case report.GroupSome:
				mark = m.styles.Partial.Render("[-]")
			default:
				mark = m.styles.Unchecked.Render("[ ]")
			}
			sb.WriteString(mark + " " + m.styles.Group.Render(d.CategoryName) + "\n")
		}
		mark := m.styles.Unchecked.Render("[ ]")
		if sel.IsEnabled(d.FullID) {
			mark = m.styles.Checked.Render("[x]")
		}
		line := "    " + mark + " " + d.SubcategoryName
		if i == m.cursor {
			line = m.styles.Bold.Render("  ▸ ") + mark + " " + m.styles.Bold.Render(d.SubcategoryName)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}
