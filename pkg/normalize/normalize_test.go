package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fixtures adapted from the test suites of several ToC generators
// (jonschlinkert/markdown-toc, sebdah/markdown-toc, naokazuterada/MarkdownTOC,
// jch/html-pipeline) so generated anchors stay compatible with documents
// linked against them.
func TestTitleizeAndSlugify(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		title string
		slug  string
	}{
		{"umlauts", "Frachtaufträge", "Frachtaufträge", "frachtaufträge"},
		{"c_sharp", "C#", "C#", "c"},
		{"lowercase_diacritics", "Okay Åô Then", "Okay Åô Then", "okay-åô-then"},

		{"strip_forward_slashes", "Some/Article", "Some/Article", "somearticle"},
		{"strip_backticks", "Some`Article`", "Some`Article`", "somearticle"},
		{"strip_cjk_punctuation", "存在，【中文】；《标点》、符号！的标题？", "存在，【中文】；《标点》、符号！的标题？", "存在中文标点符号的标题"},
		{"strip_ampersands", "Foo & Bar", "Foo & Bar", "foo--bar"},
		{"cjk_chinese", "中文", "中文", "中文"},
		{"cjk_hiragana", "かんじ", "かんじ", "かんじ"},
		{"cjk_hangul", "한자", "한자", "한자"},
		{"html_tag_leading", "<test>Foo", "Foo", "foo"},
		{"html_tag_leading_space", "<test> Foo", "Foo", "-foo"},
		{"html_tag_leading_trailing_space", "<test> Foo ", "Foo", "-foo"},
		{"html_tag_wrapping", "<div> Foo </div>", "Foo", "-foo-"},
		{"html_tag_trailing", " Foo <test>", "Foo", "foo-"},
		{"condense_spaces", "Some    Article", "Some Article", "some----article"},
		{"space_dash_space", "Foo - bar", "Foo - bar", "foo---bar"},
		{"dashes_and_spaces", "Foo- - -bar", "Foo- - -bar", "foo-----bar"},
		{"triple_dash", "Foo---bar", "Foo---bar", "foo---bar"},
		{"wide_spacing", "Foo- -   -bar", "Foo- - -bar", "foo-------bar"},

		{"applies_lower_case", "MysTrInghEre", "MysTrInghEre", "mystringhere"},
		{"replace_space_with_dash", "Some ex ample", "Some ex ample", "some-ex-ample"},
		{"drop_parens", "Header (something)", "Header (something)", "header-something"},
		{"drop_brackets", "Header [something]", "Header [something]", "header-something"},
		{"drop_braces", "Header {something}", "Header {something}", "header-something"},
		{"drop_double_quotes", `Header "something"`, `Header "something"`, "header-something"},
		{"drop_single_quotes", "Header 'something'", "Header 'something'", "header-something"},
		{"drop_backtick", "Header `something`", "Header `something`", "header-something"},
		{"drop_period", "Header .something.", "Header .something.", "header-something"},
		{"drop_exclamation", "Header !something!", "Header !something!", "header-something"},
		{"drop_tilde", "Header ~something~", "Header ~something~", "header-something"},
		{"drop_ampersand", "Header &something&", "Header &something&", "header-something"},
		{"drop_percent", "Header %something%", "Header %something%", "header-something"},
		{"drop_circumflex", "Header ^something^", "Header ^something^", "header-something"},
		{"drop_asterisk", "Header *something*", "Header *something*", "header-something"},
		{"drop_hash", "Header #something#", "Header #something#", "header-something"},
		{"drop_at", "Header @something@", "Header @something@", "header-something"},
		{"drop_pipe", "Header |something|", "Header |something|", "header-something"},

		{"leading_atx_spaces", "      Heading 1", "Heading 1", "heading-1"},
		{"bang_run", "Heading !! 2", "Heading !! 2", "heading--2"},
		{"interior_ampersands", "Heading &and&and& 3", "Heading &and&and& 3", "heading-andand-3"},
		{"code_with_brackets", "`function(param, [optional])`", "`function(param, [optional])`", "functionparam-optional"},
		{"code_with_underscore", "`get_context(key[, operator][, operand][, match_all])`", "`get_context(key[, operator][, operand][, match_all])`", "get_contextkey-operator-operand-match_all"},

		// Emphasis markers are not interpreted: underscores survive, asterisks
		// fall to the forbidden set character-by-character.
		{"underscore_head", "_x test 1", "_x test 1", "_x-test-1"},
		{"asterisk_pair", "*x* test 3", "*x* test 3", "x-test-3"},
		{"underscore_spaced", "_x _ test 4", "_x _ test 4", "_x-_-test-4"},
		{"strong_asterisks", "**x** test 9", "**x** test 9", "x-test-9"},
		{"strong_underscores_spaced", "__x __ test 10", "__x __ test 10", "__x-__-test-10"},
		{"underscore_tail", "15 test x_", "15 test x_", "15-test-x_"},
		{"underscore_middle", "1_x test", "1_x test", "1_x-test"},

		{"quotes_in_title", `"Funky President" by James Brown`, `"Funky President" by James Brown`, "funky-president-by-james-brown"},
		{"apostrophe", `"It's My Thing" by Marva Whitney`, `"It's My Thing" by Marva Whitney`, "its-my-thing-by-marva-whitney"},
		{"hyphenated_name", `"Ruthless Villain" by Eazy-E`, `"Ruthless Villain" by Eazy-E`, "ruthless-villain-by-eazy-e"},
		{"utf8_japanese", "日本語", "日本語", "日本語"},
		{"utf8_cyrillic", "Русский", "Русский", "русский"},

		{"empty", "", "", ""},
		{"all_stripped", "!!!", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.title, Titleize(tt.raw), "Titleize(%q)", tt.raw)
			assert.Equal(t, tt.slug, Slugify(tt.raw), "Slugify(%q)", tt.raw)
		})
	}
}

func TestTitleizeCollapsesNewlines(t *testing.T) {
	assert.Equal(t, "Multi Line Heading", Titleize("Multi\nLine\r\n  Heading"))
}

func TestSlugifyAllocatesFreshString(t *testing.T) {
	raw := "No Change Needed"
	slug := Slugify(raw)
	assert.Equal(t, "no-change-needed", slug)
	assert.Equal(t, "No Change Needed", raw)
}
