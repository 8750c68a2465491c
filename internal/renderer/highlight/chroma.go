package highlight

import (
	"github.com/alecthomas/chroma/v2"
)

// ChromaHighlighter adapts a chroma lexer to the Highlighter interface.
// It covers file types outside the built-in set. Chroma's token types are
// folded down to the editor's span categories.
type ChromaHighlighter struct {
	name  string
	lexer chroma.Lexer
}

// NewChromaHighlighter wraps a chroma lexer.
func NewChromaHighlighter(name string, lexer chroma.Lexer) *ChromaHighlighter {
	return &ChromaHighlighter{name: name, lexer: chroma.Coalesce(lexer)}
}

// Language returns the language name.
func (h *ChromaHighlighter) Language() string {
	return h.name
}

// Highlight tokenizes one line through the chroma lexer.
func (h *ChromaHighlighter) Highlight(line string) []Span {
	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return cover(nil, len([]rune(line)))
	}

	spans := make([]Span, 0, 8)
	col := 0
	for _, tok := range iterator.Tokens() {
		n := len([]rune(tok.Value))
		if n == 0 {
			continue
		}
		if cat := categoryFor(tok.Type); cat != Default {
			spans = append(spans, Span{Start: col, End: col + n, Category: cat})
		}
		col += n
	}
	return cover(spans, len([]rune(line)))
}

// categoryFor folds a chroma token type into a span category.
func categoryFor(tt chroma.TokenType) Category {
	switch {
	case tt.InCategory(chroma.Comment):
		return Comment
	case tt.InSubCategory(chroma.LiteralString):
		return String
	case tt.InSubCategory(chroma.LiteralNumber):
		return Number
	case tt.InCategory(chroma.Keyword):
		return Keyword
	default:
		return Default
	}
}
