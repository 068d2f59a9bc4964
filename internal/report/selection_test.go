package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vitalog/internal/taxonomy"
)

func biologicoDescriptors() []taxonomy.Descriptor {
	return taxonomy.Default().AllSubcategories("biologico")
}

func TestSelectionStartsAllEnabled(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	assert.Equal(t, sel.Len(), sel.Count())
	for _, d := range sel.Descriptors() {
		assert.True(t, sel.IsEnabled(d.FullID))
	}
}

func TestSelectionIgnoresUnknownIDs(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	before := sel.Count()
	sel.SetEnabled("outra-coisa", true)
	sel.SetEnabled("outra-coisa", false)
	assert.Equal(t, before, sel.Count())
	assert.False(t, sel.IsEnabled("outra-coisa"))
	assert.Len(t, sel.EnabledIDs(), before)
}

func TestCategoryTriState(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())

	// sono has three subcategories
	assert.Equal(t, GroupAll, sel.CategoryState("sono"))

	sel.SetEnabled("sono-qualidade", false)
	assert.Equal(t, GroupSome, sel.CategoryState("sono"))

	sel.SetEnabled("sono-cama", false)
	sel.SetEnabled("sono-mente", false)
	assert.Equal(t, GroupNone, sel.CategoryState("sono"))

	// unknown categories are empty groups
	assert.Equal(t, GroupNone, sel.CategoryState("inexistente"))
}

func TestSetCategoryTogglesAllChildren(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())

	sel.SetCategory("sono", false)
	assert.Equal(t, GroupNone, sel.CategoryState("sono"))
	assert.False(t, sel.IsEnabled("sono-qualidade"))
	assert.False(t, sel.IsEnabled("sono-cama"))
	assert.False(t, sel.IsEnabled("sono-mente"))
	// siblings untouched
	assert.True(t, sel.IsEnabled("sonhos-teve"))

	sel.SetCategory("sono", true)
	assert.Equal(t, GroupAll, sel.CategoryState("sono"))
}

func TestEnableDisableAll(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	sel.DisableAll()
	assert.Zero(t, sel.Count())
	assert.Empty(t, sel.Enabled())
	sel.EnableAll()
	assert.Equal(t, sel.Len(), sel.Count())
}

func TestResetRebindsAndReenables(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	sel.DisableAll()

	other := []taxonomy.Descriptor{{
		CategoryID: "foco", CategoryName: "Foco",
		SubcategoryID: "nivel", SubcategoryName: "Nível",
		Type: taxonomy.ValueScale, FullID: "foco-nivel",
	}}
	sel.Reset(other)
	assert.Equal(t, 1, sel.Len())
	assert.True(t, sel.IsEnabled("foco-nivel"))
	// old cycle's ids are gone
	assert.False(t, sel.IsEnabled("sono-qualidade"))
}

func TestEnabledKeepsTaxonomyOrder(t *testing.T) {
	descs := biologicoDescriptors()
	sel := NewSelection(descs)
	sel.SetEnabled("sono-cama", false)

	var want []string
	for _, d := range descs {
		if d.FullID != "sono-cama" {
			want = append(want, d.FullID)
		}
	}
	assert.Equal(t, want, sel.EnabledIDs())
}
