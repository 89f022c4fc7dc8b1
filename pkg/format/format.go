// Package format renders ordered heading records as indented
// table-of-contents lines.
package format

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"mdtoc/pkg/heading"
)

// alternatingBullets cycles by nesting depth for the Alternating style.
var alternatingBullets = []string{"-", "*", "+"}

// Style selects how table-of-contents entries are rendered. The zero value
// behaves like Alternating.
type Style struct {
	bullet      string
	alternating bool
}

var (
	// Alternating cycles between "-", "*", and "+" as entries nest deeper.
	// This is the default style.
	Alternating = Style{alternating: true}
	// Dashes marks every entry with "-".
	Dashes = Style{bullet: "-"}
	// Pluses marks every entry with "+".
	Pluses = Style{bullet: "+"}
	// Asterisks marks every entry with "*".
	Asterisks = Style{bullet: "*"}
	// Numbers marks every entry with a literal "1." and lets Markdown
	// renderers resolve the ordinal sequence.
	Numbers = Style{bullet: "1."}
)

// Custom marks every entry with an arbitrary literal bullet, which may be
// multi-character (for example a single decorative glyph).
func Custom(bullet string) Style {
	return Style{bullet: bullet}
}

// Parse maps a style name from the CLI or config file onto a Style.
func Parse(name string) (Style, error) {
	switch name {
	case "", "alternating":
		return Alternating, nil
	case "asterisks":
		return Asterisks, nil
	case "dashes":
		return Dashes, nil
	case "numbers":
		return Numbers, nil
	case "pluses":
		return Pluses, nil
	}
	return Style{}, fmt.Errorf("unknown format %q (want alternating, asterisks, dashes, numbers, or pluses)", name)
}

// Write renders one line per heading to w:
//
//	<indent><bullet> [<title>](<anchor>)\n
//
// A level-L entry is indented by (L-1)*(len(bullet)+1) spaces, counting the
// bullet's runes rather than bytes so multi-byte bullets still align. Each
// line is written with a single call; the first write error aborts the
// remaining headings and is returned.
func (s Style) Write(w io.Writer, headings []heading.Heading) error {
	if s == (Style{}) {
		s = Alternating
	}
	for _, h := range headings {
		bullet := s.bullet
		if s.alternating {
			bullet = alternatingBullets[(h.Level-1)%len(alternatingBullets)]
		}
		indent := (h.Level - 1) * (utf8.RuneCountInString(bullet) + 1)
		if _, err := fmt.Fprintf(w, "%s%s %s\n", strings.Repeat(" ", indent), bullet, h); err != nil {
			return err
		}
	}
	return nil
}
