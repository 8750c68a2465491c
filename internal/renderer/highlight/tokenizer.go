package highlight

import (
	"strings"
	"unicode"
)

// Highlighter annotates one line of text with category spans.
// Implementations must be pure: identical input yields identical spans,
// covering the whole line with no gaps or overlaps.
type Highlighter interface {
	// Language returns the language name this highlighter handles.
	Language() string

	// Highlight tokenizes a single line independent of its neighbors.
	Highlight(line string) []Span
}

// definition parameterizes the built-in tokenizer for one language.
type definition struct {
	name        string
	keywords    map[string]struct{}
	lineComment string
	stringQuote map[rune]struct{}
	escape      rune
}

// Tokenizer is a character state machine recognizing keywords, strings,
// numbers and line comments for a fixed language definition.
type Tokenizer struct {
	def definition
}

// newTokenizer builds a tokenizer from a language definition.
func newTokenizer(name, lineComment string, quotes string, keywords ...string) *Tokenizer {
	def := definition{
		name:        name,
		keywords:    make(map[string]struct{}, len(keywords)),
		lineComment: lineComment,
		stringQuote: make(map[rune]struct{}, len(quotes)),
		escape:      '\\',
	}
	for _, kw := range keywords {
		def.keywords[kw] = struct{}{}
	}
	for _, q := range quotes {
		def.stringQuote[q] = struct{}{}
	}
	return &Tokenizer{def: def}
}

// Language returns the language name.
func (t *Tokenizer) Language() string {
	return t.def.name
}

// Highlight tokenizes one line.
func (t *Tokenizer) Highlight(line string) []Span {
	runes := []rune(line)
	spans := make([]Span, 0, 8)
	comment := []rune(t.def.lineComment)

	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case t.def.lineComment != "" && hasPrefixAt(runes, comment, i):
			spans = append(spans, Span{Start: i, End: len(runes), Category: Comment})
			i = len(runes)

		case t.isQuote(r):
			end := t.scanString(runes, i)
			spans = append(spans, Span{Start: i, End: end, Category: String})
			i = end

		case unicode.IsDigit(r) && !precededByWord(runes, i):
			end := scanNumber(runes, i)
			spans = append(spans, Span{Start: i, End: end, Category: Number})
			i = end

		case isWordStart(r):
			end := scanWord(runes, i)
			if _, ok := t.def.keywords[string(runes[i:end])]; ok {
				spans = append(spans, Span{Start: i, End: end, Category: Keyword})
			}
			i = end

		default:
			i++
		}
	}

	return cover(spans, len(runes))
}

// isQuote reports whether r opens a string literal in this language.
func (t *Tokenizer) isQuote(r rune) bool {
	_, ok := t.def.stringQuote[r]
	return ok
}

// scanString consumes a quote-delimited literal starting at i, honoring a
// single escape-character lookahead. An unterminated literal runs to end
// of line.
func (t *Tokenizer) scanString(runes []rune, i int) int {
	quote := runes[i]
	j := i + 1
	for j < len(runes) {
		switch runes[j] {
		case t.def.escape:
			j += 2 // skip the escaped rune
		case quote:
			return j + 1
		default:
			j++
		}
	}
	return len(runes)
}

// scanNumber consumes a numeric literal: digits, one decimal point, and
// hex/binary/octal prefixes.
func scanNumber(runes []rune, i int) int {
	j := i
	seenDot := false
	if j+1 < len(runes) && runes[j] == '0' && (runes[j+1] == 'x' || runes[j+1] == 'X' ||
		runes[j+1] == 'b' || runes[j+1] == 'B' || runes[j+1] == 'o' || runes[j+1] == 'O') {
		j += 2
		for j < len(runes) && (unicode.IsDigit(runes[j]) || isHexLetter(runes[j]) || runes[j] == '_') {
			j++
		}
		return j
	}
	for j < len(runes) {
		r := runes[j]
		if unicode.IsDigit(r) || r == '_' {
			j++
			continue
		}
		if r == '.' && !seenDot && j+1 < len(runes) && unicode.IsDigit(runes[j+1]) {
			seenDot = true
			j++
			continue
		}
		break
	}
	return j
}

func isHexLetter(r rune) bool {
	return (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// scanWord consumes an identifier starting at i.
func scanWord(runes []rune, i int) int {
	j := i
	for j < len(runes) && isWordRune(runes[j]) {
		j++
	}
	return j
}

// precededByWord reports whether position i sits inside an identifier,
// so "x1" is not highlighted as a number.
func precededByWord(runes []rune, i int) bool {
	return i > 0 && isWordRune(runes[i-1])
}

// hasPrefixAt reports whether prefix occurs in runes at offset i.
func hasPrefixAt(runes, prefix []rune, i int) bool {
	if len(prefix) == 0 || i+len(prefix) > len(runes) {
		return false
	}
	for k, r := range prefix {
		if runes[i+k] != r {
			return false
		}
	}
	return true
}

// plainHighlighter emits a single Default span; used when no language is
// recognized.
type plainHighlighter struct{}

// Language returns the language name.
func (plainHighlighter) Language() string { return "plain" }

// Highlight returns the whole line as Default.
func (plainHighlighter) Highlight(line string) []Span {
	return cover(nil, len([]rune(line)))
}

// languageNames normalizes a detected language name to the lookup key.
func languageKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
