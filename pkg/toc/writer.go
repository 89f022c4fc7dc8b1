// Package toc splices a generated table of contents into a Markdown
// document between two marker comments.
//
// The markers delimit a managed region: on the first run only the begin
// marker needs to be present, and the end marker is inserted after the
// rendered entries. On later runs the region between the markers is replaced
// wholesale, so running the output back through Render is a fixpoint.
package toc

import (
	"io"
	"strings"

	"mdtoc/pkg/format"
	"mdtoc/pkg/heading"
)

// Marker comments recognized by default. Both must sit alone on their own
// line to be honored.
const (
	DefaultBeginMarker = "<!-- toc -->"
	DefaultEndMarker   = "<!-- tocstop -->"
)

// Transform rewrites the extracted heading list before it is rendered.
type Transform func([]heading.Heading) []heading.Heading

// SkipTitle drops level-1 headings and promotes everything beneath them one
// level, so a document's "## Section" becomes a top-level entry. This is the
// default transform.
func SkipTitle(headings []heading.Heading) []heading.Heading {
	out := make([]heading.Heading, 0, len(headings))
	for _, h := range headings {
		if h.Level == 1 {
			continue
		}
		out = append(out, h.Promote())
	}
	return out
}

// AllHeadings keeps every heading at its original level.
func AllHeadings(headings []heading.Heading) []heading.Heading {
	return headings
}

// Config controls how Render locates the managed region and renders the
// entries. The zero value uses the default markers, the alternating bullet
// style, and the SkipTitle transform.
type Config struct {
	BeginMarker string
	EndMarker   string
	Style       format.Style
	Transform   Transform
}

func (c Config) withDefaults() Config {
	if c.BeginMarker == "" {
		c.BeginMarker = DefaultBeginMarker
	}
	if c.EndMarker == "" {
		c.EndMarker = DefaultEndMarker
	}
	if c.Transform == nil {
		c.Transform = SkipTitle
	}
	return c
}

// Render writes source to w with a freshly generated table of contents
// spliced into the marker-delimited region.
//
// The begin marker is honored only when it appears in raw HTML (never inside
// a code block) and is immediately followed by a line ending. When no such
// marker exists the document is copied through untouched. When the begin
// marker matches, everything up to and including its line ending is copied,
// then a blank line, the rendered entries, and another blank line. If an end
// marker follows under the same rules the remainder is copied starting at
// the end marker itself, discarding whatever the region previously held;
// otherwise an end marker line is inserted and the remainder is copied from
// just after the begin marker's line ending.
func Render(cfg Config, source string, w io.Writer) error {
	cfg = cfg.withDefaults()
	scanner := newMarkerScanner(source)

	beginEnd, ok := beginMarkerEnd(source, cfg.BeginMarker, scanner)
	if !ok {
		_, err := io.WriteString(w, source)
		return err
	}

	if _, err := io.WriteString(w, source[:beginEnd]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := cfg.Style.Write(w, cfg.Transform(heading.Extract(source))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	if endStart, ok := endMarkerStart(source, cfg.EndMarker, scanner); ok {
		_, err := io.WriteString(w, source[endStart:])
		return err
	}
	if _, err := io.WriteString(w, cfg.EndMarker+"\n"); err != nil {
		return err
	}
	_, err := io.WriteString(w, source[beginEnd:])
	return err
}

// RenderString is Render into a string.
func RenderString(cfg Config, source string) (string, error) {
	var b strings.Builder
	if err := Render(cfg, source, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// beginMarkerEnd returns the index just past the begin marker's line ending.
// Only the scanner's first hit is considered: a marker not followed by "\n"
// or "\r\n" disqualifies the document rather than triggering a wider search.
func beginMarkerEnd(source, marker string, scanner *markerScanner) (int, bool) {
	idx, ok := scanner.find(marker)
	if !ok {
		return 0, false
	}
	rest := source[idx+len(marker):]
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		return idx + len(marker) + 2, true
	case strings.HasPrefix(rest, "\n"):
		return idx + len(marker) + 1, true
	}
	return 0, false
}

// endMarkerStart returns the index of the end marker itself, subject to the
// same single-hit and line-ending rules as beginMarkerEnd.
func endMarkerStart(source, marker string, scanner *markerScanner) (int, bool) {
	idx, ok := scanner.find(marker)
	if !ok {
		return 0, false
	}
	rest := source[idx+len(marker):]
	if strings.HasPrefix(rest, "\r\n") || strings.HasPrefix(rest, "\n") {
		return idx, true
	}
	return 0, false
}
