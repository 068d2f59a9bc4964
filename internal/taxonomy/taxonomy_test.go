package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	tab := Default()

	cycles := tab.Cycles()
	if len(cycles) != 1 {
		t.Fatalf("expected 1 built-in cycle, got %d", len(cycles))
	}
	if cycles[0].ID != "biologico" {
		t.Errorf("expected biologico cycle, got %q", cycles[0].ID)
	}

	descs := tab.AllSubcategories("biologico")
	if len(descs) != 8 {
		t.Fatalf("expected 8 subcategories, got %d", len(descs))
	}

	// FullIDs must be unique and composed as category-subcategory
	seen := make(map[string]bool)
	for _, d := range descs {
		if seen[d.FullID] {
			t.Errorf("duplicate FullID %q", d.FullID)
		}
		seen[d.FullID] = true
		if d.FullID != d.CategoryID+"-"+d.SubcategoryID {
			t.Errorf("FullID %q does not match %s-%s", d.FullID, d.CategoryID, d.SubcategoryID)
		}
	}
	if !seen["sono-qualidade"] {
		t.Error("expected sono-qualidade descriptor")
	}

	// boolean subcategories keep their type, the rest default to scale
	for _, d := range descs {
		switch d.FullID {
		case "sonhos-teve", "maconha-usou":
			if d.Type != ValueBoolean {
				t.Errorf("%s: expected boolean type, got %q", d.FullID, d.Type)
			}
		default:
			if d.Type != ValueScale {
				t.Errorf("%s: expected scale type, got %q", d.FullID, d.Type)
			}
		}
	}
}

func TestUnknownCycleYieldsEmptyDescriptors(t *testing.T) {
	tab := Default()
	if descs := tab.AllSubcategories("inexistente"); len(descs) != 0 {
		t.Errorf("expected no descriptors for unknown cycle, got %d", len(descs))
	}
	if _, ok := tab.Cycle("inexistente"); ok {
		t.Error("unknown cycle should not resolve")
	}
}

func TestNewRejectsDuplicateSubcategories(t *testing.T) {
	_, err := New([]Cycle{{
		ID:   "c",
		Name: "C",
		Categories: []Category{{
			ID:   "cat",
			Name: "Cat",
			Subcategories: []Subcategory{
				{ID: "sub", Name: "One"},
				{ID: "sub", Name: "Two"},
			},
		}},
	}})
	if err == nil {
		t.Fatal("expected duplicate subcategory error")
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := `cycles:
  - id: trabalho
    name: Ciclo de Trabalho
    categories:
      - id: foco
        name: Foco
        subcategories:
          - id: nivel
            name: Nível
          - id: pausas
            name: Fez Pausas
            type: boolean
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	tab, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	descs := tab.AllSubcategories("trabalho")
	if len(descs) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descs))
	}
	if descs[0].Type != ValueScale {
		t.Errorf("untyped subcategory should default to scale, got %q", descs[0].Type)
	}
	if descs[1].Type != ValueBoolean {
		t.Errorf("expected boolean type, got %q", descs[1].Type)
	}
	if got := descs[0].Label(); got != "Foco - Nível" {
		t.Errorf("unexpected label %q", got)
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("cycles: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for file without cycles")
	}
}
