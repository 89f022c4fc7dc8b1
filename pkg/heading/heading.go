package heading

import "fmt"

// Heading is one table-of-contents entry extracted from a Markdown document.
// Level is the heading depth (1..6), Title the normalized display text, and
// Anchor the "#"-prefixed document-unique slug. Values are plain and
// immutable; transforms return copies.
type Heading struct {
	Level  int
	Title  string
	Anchor string
}

// String renders the heading as a single-line Markdown link, the unit the
// formatter indents.
func (h Heading) String() string {
	return fmt.Sprintf("[%s](%s)", h.Title, h.Anchor)
}

// Promote returns a copy one level shallower. Level 1 stays level 1.
func (h Heading) Promote() Heading {
	if h.Level > 1 {
		h.Level--
	}
	return h
}

// Demote returns a copy one level deeper. Level 6 (the ATX maximum) stays
// level 6.
func (h Heading) Demote() Heading {
	if h.Level < 6 {
		h.Level++
	}
	return h
}
