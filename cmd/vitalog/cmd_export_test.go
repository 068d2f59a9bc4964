package main

import (
	"strings"
	"testing"

	"vitalog/internal/export"
	"vitalog/internal/report"
)

func TestExportNameIgnoresRangeForAllScope(t *testing.T) {
	r := report.DateRange{Start: "2026-08-01", End: "2026-08-31"}

	if got := exportName("biologico", r, false); got != "vitalog-biologico-2026-08-01-a-2026-08-31.csv" {
		t.Errorf("filtered scope name = %q", got)
	}
	if got := exportName("biologico", r, true); got != "vitalog-biologico.csv" {
		t.Errorf("all scope must drop the range from the name, got %q", got)
	}
}

func TestPreviewMatchesPayloadShape(t *testing.T) {
	res := &export.Result{
		Filename: "vitalog-biologico.csv",
		Header:   []string{"Data", "Hora", "Sono e Descanso - Qualidade do Sono"},
		Rows: [][]string{
			{"07/08/2026", "08:00", "Bom"},
			{"06/08/2026", "08:00", "Regular"},
			{"05/08/2026", "08:00", "Bom"},
			{"04/08/2026", "08:00", "Ruim"},
			{"03/08/2026", "08:00", "Bom"},
			{"02/08/2026", "08:00", "Excelente"},
			{"01/08/2026", "08:00", "Bom"},
		},
	}

	lines := previewLines(res, "vitalog-biologico.csv")
	if lines[0] != "Arquivo: vitalog-biologico.csv" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	// preview rows are comma-separated like the csv payload
	if lines[1] != "Data,Hora,Sono e Descanso - Qualidade do Sono" {
		t.Errorf("header line = %q", lines[1])
	}
	if lines[2] != "07/08/2026,08:00,Bom" {
		t.Errorf("row line = %q", lines[2])
	}
	for _, line := range lines[1:] {
		if strings.Contains(line, ";") {
			t.Errorf("preview must not use semicolons: %q", line)
		}
	}
	// only the first 5 rows are shown, plus filename, header and summary
	if len(lines) != 2+previewRows+1 {
		t.Fatalf("expected %d lines, got %d", 2+previewRows+1, len(lines))
	}
	if last := lines[len(lines)-1]; last != "Mostrando 5 de 7 registros." {
		t.Errorf("summary line = %q", last)
	}
}
