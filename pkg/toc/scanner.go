package toc

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// htmlSpan is a half-open byte range of the source document that the
// Markdown parser classified as raw HTML.
type htmlSpan struct {
	start int
	stop  int
}

// markerScanner locates marker comments inside raw HTML regions of a
// document. Restricting the search to HTML spans means a marker quoted in a
// fenced code block or indented code is never mistaken for the real thing.
//
// Spans are recorded per source line in document order, and the cursor only
// moves forward: once a span has matched, later searches resume at the next
// span. That keeps a begin and end marker on adjacent lines from matching
// the same region twice.
type markerScanner struct {
	source string
	spans  []htmlSpan
	next   int
}

func newMarkerScanner(source string) *markerScanner {
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var spans []htmlSpan
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.HTMLBlock:
			lines := v.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				spans = append(spans, htmlSpan{start: seg.Start, stop: seg.Stop})
			}
			if v.HasClosure() {
				seg := v.ClosureLine
				spans = append(spans, htmlSpan{start: seg.Start, stop: seg.Stop})
			}
		case *ast.RawHTML:
			for i := 0; i < v.Segments.Len(); i++ {
				seg := v.Segments.At(i)
				spans = append(spans, htmlSpan{start: seg.Start, stop: seg.Stop})
			}
		}
		return ast.WalkContinue, nil
	})

	return &markerScanner{source: source, spans: spans}
}

// find returns the absolute byte index of the first occurrence of marker in
// an HTML span at or after the cursor, advancing the cursor past the
// matching span. It reports false once the spans are exhausted.
func (s *markerScanner) find(marker string) (int, bool) {
	for s.next < len(s.spans) {
		sp := s.spans[s.next]
		s.next++
		if i := strings.Index(s.source[sp.start:sp.stop], marker); i >= 0 {
			return sp.start + i, true
		}
	}
	return 0, false
}
