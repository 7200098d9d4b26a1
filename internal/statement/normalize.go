package statement

import "regexp"

// Banks concatenate purpose sub-fields with runs of two or more
// spaces. A single space is ordinary text.
var purposeSep = regexp.MustCompile(` {2,}`)

// SplitPurpose splits a purpose string into its sub-field segments.
func SplitPurpose(s string) []string {
	if s == "" {
		return nil
	}
	return purposeSep.Split(s, -1)
}

// PurposeSegments returns the full purpose of the line, additional
// purpose included, split into segments.
func (l Line) PurposeSegments() []string {
	full := l.Display(FieldPurpose)
	if add := l.Storage(FieldAdditionalPurpose); add.Kind != KindAbsent {
		full += add.Text
	}
	return SplitPurpose(full)
}
