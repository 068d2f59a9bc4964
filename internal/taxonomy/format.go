package taxonomy

import "strconv"

// Placeholder is rendered wherever a value is absent.
const Placeholder = "-"

// scaleLabels is the single source of truth for the qualitative rating
// labels. Chart annotations, cards, the table view and formatted exports all
// go through it so the wording cannot drift between surfaces.
var scaleLabels = map[int]string{
	5: "Excelente",
	4: "Bom",
	3: "Regular",
	2: "Ruim",
	1: "Péssimo",
}

// ScaleLabel returns the qualitative label for a 1-5 rating, or the number
// itself outside that range.
func ScaleLabel(n int) string {
	if label, ok := scaleLabels[n]; ok {
		return label
	}
	return strconv.Itoa(n)
}

// BoolLabel returns the localized yes/no label.
func BoolLabel(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// FormatValue renders a value for display. Booleans become Sim/Não, numeric
// values get the qualitative label, anything else passes through unchanged,
// and absent values become the placeholder dash.
func FormatValue(v Value, t ValueType) string {
	if !v.IsSet() {
		return Placeholder
	}
	if t == ValueBoolean && v.Bool != nil {
		return BoolLabel(*v.Bool)
	}
	if n, ok := v.Numeric(); ok {
		return ScaleLabel(int(n))
	}
	if v.Bool != nil {
		return BoolLabel(*v.Bool)
	}
	return v.Raw()
}

// Status buckets a value for color coding.
type Status int

const (
	StatusNone Status = iota
	StatusExcellent
	StatusGood
	StatusRegular
	StatusBad
	StatusTerrible
)

// StatusOf classifies a value into a display status. A true boolean counts
// as excellent, a false one is neutral, mirroring the original status rules.
func StatusOf(v Value) Status {
	if v.Bool != nil {
		if *v.Bool {
			return StatusExcellent
		}
		return StatusNone
	}
	n, ok := v.Numeric()
	if !ok {
		return StatusNone
	}
	switch int(n) {
	case 5:
		return StatusExcellent
	case 4:
		return StatusGood
	case 3:
		return StatusRegular
	case 2:
		return StatusBad
	case 1:
		return StatusTerrible
	}
	return StatusNone
}
