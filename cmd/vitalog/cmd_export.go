package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"vitalog/internal/export"
	"vitalog/internal/report"
)

var (
	exportCycle      string
	exportFrom       string
	exportTo         string
	exportCategories []string
	exportNotes      bool
	exportRaw        bool
	exportAll        bool
	exportFormat     string
	exportOut        string
	exportDryRun     bool
)

const previewRows = 5

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export records to CSV",
	Long: `Writes the selected records as a CSV file. By default every
subcategory of the cycle is included with display-formatted values; use
--categories to narrow the columns and --raw for the stored values.

--dry-run prints a preview of the first rows without writing anything.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportCycle, "cycle", "", "cycle to export (default from config)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "start date, YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "end date, YYYY-MM-DD")
	exportCmd.Flags().StringSliceVar(&exportCategories, "categories", nil, "subcategory fullids to include (default all)")
	exportCmd.Flags().BoolVar(&exportNotes, "notes", false, "include note columns")
	exportCmd.Flags().BoolVar(&exportRaw, "raw", false, "write stored values instead of display labels")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every record, ignoring the date range")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv, excel or pdf")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "output directory")
	exportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "preview without writing a file")
}

func runExport(cmd *cobra.Command, args []string) error {
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
	cycleID, err := resolveCycle(tax, exportCycle)
	if err != nil {
		return err
	}

	eng := report.New(st, tax, logger)
	descs := tax.AllSubcategories(cycleID)
	dateRange := report.DateRange{Start: exportFrom, End: exportTo}

	recs := eng.AllRecords(sess, cycleID)
	scope := export.ScopeAll
	if !exportAll {
		scope = export.ScopeFiltered
		recs = report.FilterRecords(recs, cycleID, dateRange)
	}

	selected := exportCategories
	if len(selected) == 0 {
		for _, d := range descs {
			selected = append(selected, d.FullID)
		}
	}

	res, err := export.Build(recs, descs, export.Options{
		Selected:     selected,
		IncludeNotes: exportNotes,
		FormatValues: !exportRaw,
		Scope:        scope,
		Format:       export.Format(exportFormat),
	}, logger)
	if errors.Is(err, export.ErrNoCategories) {
		return fmt.Errorf("no matching subcategories in cycle %q", cycleID)
	}
	if err != nil {
		return err
	}

	if res.Degraded {
		fmt.Printf("Formato %q indisponível, exportando CSV.\n", exportFormat)
	}

	name := exportName(cycleID, dateRange, exportAll)
	if exportDryRun {
		for _, line := range previewLines(res, name) {
			fmt.Println(line)
		}
		return nil
	}

	if err := os.MkdirAll(exportOut, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(exportOut, name)
	if err := os.WriteFile(path, res.Payload, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Printf("Exportado: %s (%d registros)\n", path, len(res.Rows))
	return nil
}

// exportName derives the suggested filename. The all-records scope ignores
// the date range, so the name stays unranged even when bounds were passed.
func exportName(cycleID string, r report.DateRange, all bool) string {
	if all {
		r = report.DateRange{}
	}
	return export.Filename(cycleID, r)
}

// previewLines renders the dry-run preview: the filename, the header and
// the first rows in the same comma-separated shape as the real payload.
func previewLines(res *export.Result, name string) []string {
	lines := []string{
		"Arquivo: " + name,
		strings.Join(res.Header, ","),
	}
	n := len(res.Rows)
	shown := n
	if shown > previewRows {
		shown = previewRows
	}
	for _, row := range res.Rows[:shown] {
		lines = append(lines, strings.Join(row, ","))
	}
	return append(lines, fmt.Sprintf("Mostrando %d de %d registros.", shown, n))
}
