package taxonomy

import "strconv"

// Value is one recorded measurement. Exactly one of the pointers is set for
// a well-formed value; free text is carried in Text. The zero Value means
// "not recorded".
type Value struct {
	Scale *int    `json:"scale,omitempty"`
	Bool  *bool   `json:"bool,omitempty"`
	Text  *string `json:"text,omitempty"`
}

// Entry pairs a value with its companion note under a single typed key
// (subcategory FullID), replacing the original composite string keys.
type Entry struct {
	Value Value  `json:"value,omitempty"`
	Note  string `json:"note,omitempty"`
}

// ScaleValue builds a 1-5 rating value.
func ScaleValue(n int) Value { return Value{Scale: &n} }

// BoolValue builds a yes/no value.
func BoolValue(b bool) Value { return Value{Bool: &b} }

// TextValue builds a free-text value.
func TextValue(s string) Value { return Value{Text: &s} }

// IsSet reports whether anything was recorded.
func (v Value) IsSet() bool {
	return v.Scale != nil || v.Bool != nil || v.Text != nil
}

// Numeric returns the value as a number when it is numeric-coercible:
// a scale rating, or free text parseable as an integer. Booleans are not
// numeric.
func (v Value) Numeric() (float64, bool) {
	switch {
	case v.Scale != nil:
		return float64(*v.Scale), true
	case v.Text != nil:
		if n, err := strconv.Atoi(*v.Text); err == nil {
			return float64(n), true
		}
	}
	return 0, false
}

// Raw returns the unformatted representation used by raw exports: the digit
// for scales, true/false for booleans, the text itself otherwise. Unset
// values yield the empty string.
func (v Value) Raw() string {
	switch {
	case v.Scale != nil:
		return strconv.Itoa(*v.Scale)
	case v.Bool != nil:
		return strconv.FormatBool(*v.Bool)
	case v.Text != nil:
		return *v.Text
	}
	return ""
}
