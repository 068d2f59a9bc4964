package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vitalog/internal/taxonomy"
)

var (
	addCycle string
	addAt    string
	addSets  []string
	addNotes []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a journal entry",
	Long: `Records one timestamped entry for the selected profile.

Values are passed as --set category-subcategory=value. Ratings are the
numbers 1 to 5, yes/no answers accept sim/nao/true/false, and anything
else is stored as free text.

Example:
  vitalog add -p mykey --set sono-qualidade=4 --set sonhos-teve=sim \
    --note sono-qualidade="acordei uma vez"`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addCycle, "cycle", "", "cycle to record under (default from config)")
	addCmd.Flags().StringVar(&addAt, "at", "", "timestamp, YYYY-MM-DD or 'YYYY-MM-DD HH:MM' (default now)")
	addCmd.Flags().StringArrayVar(&addSets, "set", nil, "value as fullid=value, repeatable")
	addCmd.Flags().StringArrayVar(&addNotes, "note", nil, "note as fullid=text, repeatable")
}

func runAdd(cmd *cobra.Command, args []string) error {
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
	cycleID, err := resolveCycle(tax, addCycle)
	if err != nil {
		return err
	}

	at := time.Now()
	if addAt != "" {
		at, err = parseTimestamp(addAt)
		if err != nil {
			return err
		}
	}

	descs := make(map[string]taxonomy.Descriptor)
	for _, d := range tax.AllSubcategories(cycleID) {
		descs[d.FullID] = d
	}

	data := make(map[string]taxonomy.Entry)
	for _, set := range addSets {
		id, raw, ok := strings.Cut(set, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, expected fullid=value", set)
		}
		d, known := descs[id]
		if !known {
			return fmt.Errorf("unknown subcategory %q in cycle %q", id, cycleID)
		}
		entry := data[id]
		entry.Value = parseValue(raw, d.Type)
		data[id] = entry
	}
	for _, note := range addNotes {
		id, text, ok := strings.Cut(note, "=")
		if !ok {
			return fmt.Errorf("invalid --note %q, expected fullid=text", note)
		}
		if _, known := descs[id]; !known {
			return fmt.Errorf("unknown subcategory %q in cycle %q", id, cycleID)
		}
		entry := data[id]
		entry.Note = text
		data[id] = entry
	}
	if len(data) == 0 {
		return fmt.Errorf("nothing to record, pass at least one --set or --note")
	}

	rec, err := st.AddRecord(sess.ProfileKey, cycleID, at, data)
	if err != nil {
		return err
	}
	logger.Debug("record added", zap.String("id", rec.ID), zap.Int("entries", len(data)))
	fmt.Printf("Registro salvo em %s %s (%d itens).\n",
		at.Format("02/01/2006"), at.Format("15:04"), len(data))
	return nil
}

// parseValue interprets a raw flag value against the subcategory type.
// Scale subcategories accept 1..5; boolean ones accept yes/no spellings;
// everything else round-trips as text.
func parseValue(raw string, t taxonomy.ValueType) taxonomy.Value {
	switch t {
	case taxonomy.ValueBoolean:
		switch strings.ToLower(raw) {
		case "sim", "s", "true", "1":
			return taxonomy.BoolValue(true)
		case "nao", "não", "n", "false", "0":
			return taxonomy.BoolValue(false)
		}
	default:
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 5 {
			return taxonomy.ScaleValue(n)
		}
	}
	return taxonomy.TextValue(raw)
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, expected YYYY-MM-DD or 'YYYY-MM-DD HH:MM'", s)
}
