package heading

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"mdtoc/pkg/normalize"
)

// Extract parses source as CommonMark and returns one Heading per ATX or
// setext heading, in document order. Any text is valid input: unstructured
// documents simply yield no headings.
//
// The raw text span of each heading is recovered from the parser's recorded
// source segments rather than from its inline child nodes, so inline markup
// (code spans, emphasis markers, HTML tags) reaches the normalizer verbatim
// and title/anchor derivation matches what readers see in the source.
func Extract(source string) []Heading {
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	slugger := NewSlugger()
	var headings []Heading

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		node, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		// The parser contract bounds levels to 1..6; anything else is a
		// defect upstream, not malformed input.
		if node.Level < 1 || node.Level > 6 {
			panic(fmt.Sprintf("heading: parser reported level %d outside 1..6", node.Level))
		}
		raw := rawSpan(src, node)
		headings = append(headings, Heading{
			Level:  node.Level,
			Title:  normalize.Titleize(raw),
			Anchor: "#" + slugger.Slug(raw),
		})
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// rawSpan slices the heading's raw source text: the bytes between the first
// recorded segment's start and the last segment's stop, with one trailing LF
// and then one CR trimmed so CRLF and LF documents normalize identically.
// A heading with no inner text (a bare "#") yields the empty string.
func rawSpan(src []byte, node *ast.Heading) string {
	lines := node.Lines()
	if lines.Len() == 0 {
		return ""
	}
	start := lines.At(0).Start
	stop := lines.At(lines.Len() - 1).Stop
	if start > stop || stop > len(src) {
		panic(fmt.Sprintf("heading: segment [%d,%d) out of range for %d-byte source", start, stop, len(src)))
	}
	raw := string(src[start:stop])
	raw = strings.TrimSuffix(raw, "\n")
	return strings.TrimSuffix(raw, "\r")
}
