package normalize

import (
	"regexp"
	"strings"
)

// --- Heading Text Normalization ---
var htmlTagLike = regexp.MustCompile(`</?[^>]+>`) // HTML-tag-shaped substrings, e.g. "<blink>" or "</ td >"

// invalidSlugChars matches every character that is stripped from anchor
// slugs: an ASCII symbol set plus CJK punctuation (full-width brackets,
// quotation marks, dashes, ellipsis). ASCII dashes and underscores are kept
// so that space-derived dashes and snake_case identifiers survive.
var invalidSlugChars = regexp.MustCompile("[" +
	"|$&`~=\\\\/@+*!?({\\[\\]})<>.,;:'\"^%#" +
	"。？！，、；：“”【】（）〔〕［］﹃﹄‘’﹁﹂—…－～《》〈〉「」" +
	"]")

// Titleize converts raw heading text into its display title: HTML-tag-like
// substrings are removed and all runs of whitespace (including newlines in
// multi-line setext headings) collapse to single spaces, trimmed at both
// ends. Case, punctuation, and non-Latin scripts pass through verbatim.
func Titleize(raw string) string {
	return strings.Join(strings.Fields(htmlTagLike.ReplaceAllString(raw, "")), " ")
}

// Slugify converts raw heading text into a URL-safe anchor slug: lowercase,
// trim, replace each literal space with a dash, strip HTML-tag-like
// substrings, then drop every character in the forbidden set. Scripts
// without case (CJK, etc.) pass through unchanged. Empty or fully-stripped
// input yields the empty string, which is a valid slug.
//
// TODO: interpret emphasis/strong sequences ("_x_", "__x__") the way GitHub
// does. Until then underscores survive verbatim; changing this would break
// anchors in documents linked against current output.
func Slugify(raw string) string {
	slug := strings.TrimSpace(strings.ToLower(raw))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = htmlTagLike.ReplaceAllString(slug, "")
	return invalidSlugChars.ReplaceAllString(slug, "")
}
