package xmltree

import "strings"

// Field is an optional scalar read from the tree. Absent elements and empty
// elements are distinguishable: an empty element is present with "" as value.
type Field struct {
	value   string
	present bool
}

// Present builds a Field holding value.
func Present(value string) Field { return Field{value: value, present: true} }

// Absent builds an empty Field.
func Absent() Field { return Field{} }

// Value returns the raw text and whether the element existed.
func (f Field) Value() (string, bool) { return f.value, f.present }

// IsPresent reports whether the element existed.
func (f Field) IsPresent() bool { return f.present }

// String returns the raw text, or "" when absent.
func (f Field) String() string { return f.value }

// Trimmed returns the text with surrounding whitespace removed.
func (f Field) Trimmed() string { return strings.TrimSpace(f.value) }

// Blank reports whether the field is absent or holds only whitespace.
func (f Field) Blank() bool { return strings.TrimSpace(f.value) == "" }

// Or returns the raw text when the field is not blank and fallback otherwise.
func (f Field) Or(fallback string) string {
	if f.Blank() {
		return fallback
	}
	return f.value
}
