package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// Detect picks a highlighter for the given file. Detection runs once per
// file open, not per frame.
//
// The built-in tokenizers win for their languages; other recognized
// languages get a chroma lexer; everything else renders unstyled.
func Detect(filename string, content []byte) Highlighter {
	if filename == "" {
		return plainHighlighter{}
	}

	name := enry.GetLanguage(filepath.Base(filename), content)

	if ctor, ok := builtins[languageKey(name)]; ok {
		return ctor()
	}

	if name != "" {
		if lexer := lexers.Get(name); lexer != nil {
			return NewChromaHighlighter(languageKey(name), lexer)
		}
	}
	if lexer := lexers.Match(filepath.Base(filename)); lexer != nil {
		return NewChromaHighlighter(strings.ToLower(lexer.Config().Name), lexer)
	}

	return plainHighlighter{}
}
