// Package highlight produces per-character style annotations for buffer
// lines. Each supported language has a small character-level tokenizer;
// anything else falls through to a chroma lexer or to unstyled text.
//
// Tokenization is line-local: block comments and multi-line strings are
// not tracked across lines. That trades precision for a strict
// O(visible lines) redraw cost.
package highlight

import "sort"

// Category classifies a run of characters for display.
type Category uint8

// Span categories.
const (
	Default Category = iota
	Keyword
	String
	Number
	Comment
	Match        // search match
	MatchCurrent // the active search match
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Default:
		return "default"
	case Keyword:
		return "keyword"
	case String:
		return "string"
	case Number:
		return "number"
	case Comment:
		return "comment"
	case Match:
		return "match"
	case MatchCurrent:
		return "match-current"
	default:
		return "unknown"
	}
}

// Span is a contiguous run of characters on one line with a single
// category. Columns are rune offsets; End is exclusive.
type Span struct {
	Start    int
	End      int
	Category Category
}

// cover sorts spans and fills any gaps with Default so the result covers
// exactly [0, lineLen) with no overlaps. Input spans must not overlap.
func cover(spans []Span, lineLen int) []Span {
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	out := make([]Span, 0, len(spans)+1)
	col := 0
	for _, s := range spans {
		if s.End <= s.Start || s.Start >= lineLen {
			continue
		}
		if s.Start > col {
			out = append(out, Span{Start: col, End: s.Start, Category: Default})
		}
		if s.End > lineLen {
			s.End = lineLen
		}
		out = append(out, s)
		col = s.End
	}
	if col < lineLen {
		out = append(out, Span{Start: col, End: lineLen, Category: Default})
	}
	return out
}

// CategoryAt returns the category covering the given column.
// Spans are assumed to be a full cover as produced by Highlight.
func CategoryAt(spans []Span, col int) Category {
	for _, s := range spans {
		if col >= s.Start && col < s.End {
			return s.Category
		}
	}
	return Default
}
