package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vitalog/cmd/vitalog/ui"
	"vitalog/internal/report"
)

var historyCycle string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse records interactively",
	Long: `Opens the interactive history browser: cards or a table over the
filtered records, with pagination, sorting, date filtering and per-category
selection.

Keys:
  tab        switch cards/table view
  s          cycle sort order
  ←/→        previous/next page
  ↑/↓        move the category cursor
  space      toggle the highlighted subcategory
  g          toggle the highlighted subcategory's whole group
  a / n      select all / none
  f          edit the date filter
  c          next cycle
  q          quit`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyCycle, "cycle", "", "cycle to open (default from config)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sess, err := requireSession(st)
	if err != nil {
		return err
	}
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}
	cycleID, err := resolveCycle(tax, historyCycle)
	if err != nil {
		return err
	}

	eng := report.New(st, tax, logger)
	ctx := eng.NewContext(cycleID)
	if cfg.ItemsPerPage > 0 {
		ctx.PerPage = cfg.ItemsPerPage
	}

	m := newHistoryModel(eng, sess, ctx, ui.NewStyles(ui.ThemeByName(cfg.Theme)))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("history ui: %w", err)
	}
	return nil
}
