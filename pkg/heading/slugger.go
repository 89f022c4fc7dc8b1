package heading

import (
	"fmt"

	"mdtoc/pkg/normalize"
)

// Slugger issues anchor slugs that are unique within a single document pass.
// When a normalized slug collides with one already issued, the smallest
// unused "-N" suffix resolves it, so identical headings become "x", "x-1",
// "x-2", ... Uniqueness is resolved incrementally: call Slug exactly once
// per heading, in document order.
type Slugger struct {
	issued map[string]struct{}
}

// NewSlugger returns a Slugger with an empty issued set, scoped to one
// document.
func NewSlugger() *Slugger {
	return &Slugger{issued: make(map[string]struct{})}
}

// Slug normalizes raw heading text and returns a collision-free slug,
// recording it so later duplicates pick the next free suffix.
func (s *Slugger) Slug(raw string) string {
	candidate := normalize.Slugify(raw)
	if _, taken := s.issued[candidate]; taken {
		for n := 1; ; n++ {
			suffixed := fmt.Sprintf("%s-%d", candidate, n)
			if _, taken := s.issued[suffixed]; !taken {
				candidate = suffixed
				break
			}
		}
	}
	s.issued[candidate] = struct{}{}
	return candidate
}
