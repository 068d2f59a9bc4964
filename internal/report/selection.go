package report

import "vitalog/internal/taxonomy"

// GroupState is the derived tri-state of a category group. It is computed
// from subcategory membership at render time and never persisted.
type GroupState int

const (
	GroupNone GroupState = iota
	GroupSome
	GroupAll
)

// Selection tracks which subcategories are enabled for display and export.
// Membership is always evaluated against the current cycle's descriptor
// list; switching cycles rebuilds the set as all-enabled.
type Selection struct {
	descriptors []taxonomy.Descriptor
	enabled     map[string]bool
}

// NewSelection builds an all-enabled selection over the descriptor list.
func NewSelection(descs []taxonomy.Descriptor) *Selection {
	s := &Selection{}
	s.Reset(descs)
	return s
}

// Reset rebinds the selection to a new descriptor list with everything
// enabled. Called on cycle switch.
func (s *Selection) Reset(descs []taxonomy.Descriptor) {
	s.descriptors = descs
	s.enabled = make(map[string]bool, len(descs))
	for _, d := range descs {
		s.enabled[d.FullID] = true
	}
}

// EnableAll turns every subcategory on.
func (s *Selection) EnableAll() {
	for _, d := range s.descriptors {
		s.enabled[d.FullID] = true
	}
}

// DisableAll turns every subcategory off.
func (s *Selection) DisableAll() {
	for _, d := range s.descriptors {
		s.enabled[d.FullID] = false
	}
}

// SetEnabled toggles one subcategory. FullIDs outside the current cycle's
// descriptor set are ignored, preserving the subset invariant.
func (s *Selection) SetEnabled(fullID string, on bool) {
	if _, known := s.enabled[fullID]; known {
		s.enabled[fullID] = on
	}
}

// SetCategory toggles every subcategory under one category. Equivalent to
// toggling each individually; no group state is stored.
func (s *Selection) SetCategory(categoryID string, on bool) {
	for _, d := range s.descriptors {
		if d.CategoryID == categoryID {
			s.enabled[d.FullID] = on
		}
	}
}

// IsEnabled reports whether a subcategory is enabled.
func (s *Selection) IsEnabled(fullID string) bool {
	return s.enabled[fullID]
}

// CategoryState derives the tri-state of a category group for display.
func (s *Selection) CategoryState(categoryID string) GroupState {
	var total, on int
	for _, d := range s.descriptors {
		if d.CategoryID != categoryID {
			continue
		}
		total++
		if s.enabled[d.FullID] {
			on++
		}
	}
	switch {
	case total == 0 || on == 0:
		return GroupNone
	case on == total:
		return GroupAll
	default:
		return GroupSome
	}
}

// Descriptors returns the full descriptor list the selection is bound to,
// in taxonomy order.
func (s *Selection) Descriptors() []taxonomy.Descriptor {
	return s.descriptors
}

// Enabled returns the enabled descriptors in taxonomy order.
func (s *Selection) Enabled() []taxonomy.Descriptor {
	var out []taxonomy.Descriptor
	for _, d := range s.descriptors {
		if s.enabled[d.FullID] {
			out = append(out, d)
		}
	}
	return out
}

// EnabledIDs returns the enabled FullIDs in taxonomy order. Used to seed
// the export dialog's independent selection.
func (s *Selection) EnabledIDs() []string {
	var out []string
	for _, d := range s.descriptors {
		if s.enabled[d.FullID] {
			out = append(out, d.FullID)
		}
	}
	return out
}

// Count returns how many subcategories are enabled.
func (s *Selection) Count() int {
	var n int
	for _, d := range s.descriptors {
		if s.enabled[d.FullID] {
			n++
		}
	}
	return n
}

// Len returns the size of the descriptor list.
func (s *Selection) Len() int {
	return len(s.descriptors)
}
