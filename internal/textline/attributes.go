package textline

import "sort"

// Attribute is one highlighting run: length runes starting at a rune
// offset sharing one attribute value. Runs are kept sorted by offset and
// never overlap.
type Attribute struct {
	Offset int
	Length int
	Value  int
}

// AddAttribute appends a run. If the previous run has the same value and
// ends exactly where the new run starts, the runs are merged. Callers
// must append in non-decreasing offset order for merging to work.
func (l *TextLine) AddAttribute(attr Attribute) {
	if n := len(l.attributes); n > 0 {
		last := &l.attributes[n-1]
		if last.Value == attr.Value && last.Offset+last.Length == attr.Offset {
			last.Length += attr.Length
			return
		}
	}
	l.attributes = append(l.attributes, attr)
}

// AttributeAt returns the attribute value covering pos, or 0 if pos
// falls in a gap between runs or past the last run.
func (l *TextLine) AttributeAt(pos int) int {
	i := sort.Search(len(l.attributes), func(i int) bool {
		a := l.attributes[i]
		return pos < a.Offset+a.Length
	})
	if i < len(l.attributes) {
		a := l.attributes[i]
		if a.Offset <= pos && pos < a.Offset+a.Length {
			return a.Value
		}
	}
	return 0
}

// Attributes returns the run list. The slice is owned by the line.
func (l *TextLine) Attributes() []Attribute {
	return l.attributes
}

// ClearAttributes drops all runs, keeping capacity for the next
// highlight pass.
func (l *TextLine) ClearAttributes() {
	l.attributes = l.attributes[:0]
}
