package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vitalog/internal/config"
	"vitalog/internal/logging"
	"vitalog/internal/report"
	"vitalog/internal/store"
	"vitalog/internal/taxonomy"
)

var (
	// Global flags
	verbose    bool
	cfgPath    string
	profileKey string

	logger *zap.Logger
	cfg    *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vitalog",
	Short: "vitalog - local wellness journal",
	Long: `vitalog is a single-user wellness journal that lives entirely on this
machine. Records are timestamped ratings, yes/no answers and free text over
a fixed taxonomy of categories, stored in a local SQLite database.

Use "add" to record entries, "history" for the interactive browser,
"report" for chart images and "export" for CSV output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cfgPath == "" {
			cfgPath, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// openStore opens the record database at the configured location.
func openStore() (*store.Store, error) {
	dir := cfg.DataDir
	if dir == "" {
		base, err := config.Dir()
		if err != nil {
			return nil, err
		}
		dir = base
	}
	return store.Open(filepath.Join(dir, "vitalog.db"), logger)
}

// loadTaxonomy returns the configured cycle definitions, falling back to
// the built-in table.
func loadTaxonomy() (*taxonomy.Table, error) {
	if cfg.TaxonomyPath != "" {
		return taxonomy.Load(cfg.TaxonomyPath)
	}
	return taxonomy.Default(), nil
}

// requireSession resolves the --profile flag into a session, verifying the
// profile exists.
func requireSession(st *store.Store) (report.Session, error) {
	if profileKey == "" {
		return report.Session{}, fmt.Errorf("no profile selected, pass --profile or create one with 'vitalog profile create'")
	}
	p, err := st.Profile(profileKey)
	if err != nil {
		return report.Session{}, err
	}
	return report.Session{ProfileKey: p.Key, ProfileName: p.Name}, nil
}

// resolveCycle validates a --cycle flag value, empty meaning the
// configured default.
func resolveCycle(tax *taxonomy.Table, id string) (string, error) {
	if id == "" {
		id = cfg.DefaultCycle
	}
	if _, ok := tax.Cycle(id); !ok {
		return "", fmt.Errorf("unknown cycle %q", id)
	}
	return id, nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "settings file (default ~/.vitalog/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileKey, "profile", "p", "", "profile key")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
