package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vitalog/internal/chart"
	"vitalog/internal/report"
)

var (
	reportCycle string
	reportFrom  string
	reportTo    string
	reportOut   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the period and render chart images",
	Long: `Prints a summary of the filtered period and writes two PNG charts next
to it: the trend of each rated subcategory over time and a radar snapshot
of the most recent record.

Both date bounds must be given to filter; with only one the whole journal
is summarized.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportCycle, "cycle", "", "cycle to report on (default from config)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "start date, YYYY-MM-DD")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "end date, YYYY-MM-DD")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", ".", "directory for chart images")
}

func runReport(cmd *cobra.Command, args []string) error {
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
	cycleID, err := resolveCycle(tax, reportCycle)
	if err != nil {
		return err
	}

	eng := report.New(st, tax, logger)
	ctx := eng.NewContext(cycleID)
	ctx.Range = report.DateRange{Start: reportFrom, End: reportTo}
	ctx.PerPage = 1 // pagination unused here, the summary reads Filtered
	snap := eng.Refresh(sess, ctx)

	cycle, _ := tax.Cycle(cycleID)
	fmt.Printf("Ciclo: %s\n", cycle.Name)
	if ctx.Range.IsBounded() {
		fmt.Printf("Período: %s a %s\n", reportFrom, reportTo)
	} else {
		fmt.Println("Período: todos os registros")
	}
	fmt.Printf("Registros: %d\n", len(snap.Filtered))
	fmt.Printf("Média geral: %.1f\n", report.OverallAverage(snap.Filtered))

	if len(snap.Filtered) == 0 {
		fmt.Println("Nenhum registro no período, gráficos não gerados.")
		return nil
	}

	if err := os.MkdirAll(reportOut, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	now := time.Now()
	trendPath := filepath.Join(reportOut, chart.Filename("vitalog-tendencia", now))
	radarPath := filepath.Join(reportOut, chart.Filename("vitalog-radar", now))

	var g errgroup.Group
	g.Go(func() error {
		in := chart.TrendInput{Labels: snap.Trend.Labels}
		for _, s := range snap.Trend.Series {
			in.Datasets = append(in.Datasets, chart.Dataset{Label: s.Label, Points: s.Points})
		}
		png, err := chart.RenderTrend(in)
		if err != nil {
			return err
		}
		return os.WriteFile(trendPath, png, 0o644)
	})
	g.Go(func() error {
		png, err := chart.RenderRadar(chart.RadarInput{
			Labels: snap.Radar.Labels,
			Values: snap.Radar.Values,
		})
		if err != nil {
			return err
		}
		return os.WriteFile(radarPath, png, 0o644)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println("Gráficos gerados:")
	fmt.Println("  " + trendPath)
	fmt.Println("  " + radarPath)
	return nil
}
