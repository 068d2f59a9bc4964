// Package taxonomy holds the reference table of cycles, categories and
// subcategories that a journal tracks, plus the value type system shared by
// every surface that displays or exports a recorded value.
package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ValueType describes how a subcategory is measured.
type ValueType string

const (
	// ValueScale is a 1-5 rating.
	ValueScale ValueType = "scale"
	// ValueBoolean is a yes/no answer.
	ValueBoolean ValueType = "boolean"
)

// Subcategory is one measured facet of a category.
type Subcategory struct {
	ID   string    `yaml:"id"`
	Name string    `yaml:"name"`
	Type ValueType `yaml:"type,omitempty"` // empty means scale
}

// Category is a trackable dimension grouping subcategories.
type Category struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	Subcategories []Subcategory `yaml:"subcategories"`
}

// Cycle is a top-level life domain being tracked.
type Cycle struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Categories []Category `yaml:"categories"`
}

// Descriptor is the flattened view of one subcategory within a cycle.
// FullID is unique within a cycle's descriptor set.
type Descriptor struct {
	CategoryID      string
	CategoryName    string
	SubcategoryID   string
	SubcategoryName string
	Type            ValueType
	FullID          string
}

// Label returns the "Category - Subcategory" display label used by table
// headers, chart legends and export columns.
func (d Descriptor) Label() string {
	return d.CategoryName + " - " + d.SubcategoryName
}

// Table is an immutable set of cycles.
type Table struct {
	cycles []Cycle
	byID   map[string]int
}

// New builds a Table from the given cycles. Subcategory types default to
// scale when unset.
func New(cycles []Cycle) (*Table, error) {
	t := &Table{cycles: cycles, byID: make(map[string]int, len(cycles))}
	for i, c := range cycles {
		if c.ID == "" {
			return nil, fmt.Errorf("cycle %d has no id", i)
		}
		if _, dup := t.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate cycle id %q", c.ID)
		}
		t.byID[c.ID] = i

		seen := make(map[string]bool)
		for ci, cat := range c.Categories {
			for si, sub := range cat.Subcategories {
				if sub.Type == "" {
					t.cycles[i].Categories[ci].Subcategories[si].Type = ValueScale
				}
				fullID := cat.ID + "-" + sub.ID
				if seen[fullID] {
					return nil, fmt.Errorf("cycle %q: duplicate subcategory %q", c.ID, fullID)
				}
				seen[fullID] = true
			}
		}
	}
	return t, nil
}

// Load reads a taxonomy table from a yaml file. The file holds a list of
// cycles in the same shape as the built-in default.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	var doc struct {
		Cycles []Cycle `yaml:"cycles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}
	if len(doc.Cycles) == 0 {
		return nil, fmt.Errorf("taxonomy file %s defines no cycles", path)
	}
	return New(doc.Cycles)
}

// Cycles returns all cycles in definition order.
func (t *Table) Cycles() []Cycle {
	return t.cycles
}

// Cycle looks up a cycle by id.
func (t *Table) Cycle(id string) (Cycle, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Cycle{}, false
	}
	return t.cycles[i], true
}

// AllSubcategories returns the descriptor list for a cycle in taxonomy
// order. Unknown cycle ids yield an empty list, never an error.
func (t *Table) AllSubcategories(cycleID string) []Descriptor {
	cycle, ok := t.Cycle(cycleID)
	if !ok {
		return nil
	}
	var out []Descriptor
	for _, cat := range cycle.Categories {
		for _, sub := range cat.Subcategories {
			out = append(out, Descriptor{
				CategoryID:      cat.ID,
				CategoryName:    cat.Name,
				SubcategoryID:   sub.ID,
				SubcategoryName: sub.Name,
				Type:            sub.Type,
				FullID:          cat.ID + "-" + sub.ID,
			})
		}
	}
	return out
}

// Default returns the built-in reference table. Display names stay in the
// journal's original Portuguese; they are data, not code.
func Default() *Table {
	t, err := New([]Cycle{
		{
			ID:   "biologico",
			Name: "Ciclo Biológico",
			Categories: []Category{
				{
					ID:   "sono",
					Name: "Sono e Descanso",
					Subcategories: []Subcategory{
						{ID: "qualidade", Name: "Qualidade do Sono"},
						{ID: "cama", Name: "Qualidade da Cama"},
						{ID: "mente", Name: "Qualidade da Mente"},
					},
				},
				{
					ID:   "sonhos",
					Name: "Sonhos",
					Subcategories: []Subcategory{
						{ID: "teve", Name: "Teve Sonhos", Type: ValueBoolean},
					},
				},
				{
					ID:   "alimentacao",
					Name: "Alimentação",
					Subcategories: []Subcategory{
						{ID: "qualidade", Name: "Qualidade"},
					},
				},
				{
					ID:   "maconha",
					Name: "Uso de Maconha",
					Subcategories: []Subcategory{
						{ID: "usou", Name: "Fez Uso", Type: ValueBoolean},
					},
				},
				{
					ID:   "atividade",
					Name: "Atividade Física",
					Subcategories: []Subcategory{
						{ID: "nivel", Name: "Nível"},
					},
				},
				{
					ID:   "hidratacao",
					Name: "Hidratação",
					Subcategories: []Subcategory{
						{ID: "nivel", Name: "Nível"},
					},
				},
			},
		},
	})
	if err != nil {
		// The built-in table is validated by tests; reaching this is a bug.
		panic(err)
	}
	return t
}
