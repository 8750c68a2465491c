package highlight

// Source caches highlighted lines for the renderer. Entries are
// validated against line content, so an edited line is recomputed on the
// next frame and untouched lines are served from cache. Only lines the
// renderer actually requests (the visible ones) are ever computed.
type Source struct {
	highlighter Highlighter
	cache       map[int]*cachedLine
	maxEntries  int
}

// cachedLine holds cached spans plus the text they were computed from.
type cachedLine struct {
	text  string
	spans []Span
}

// NewSource creates a caching source over the given highlighter.
func NewSource(h Highlighter) *Source {
	if h == nil {
		h = plainHighlighter{}
	}
	return &Source{
		highlighter: h,
		cache:       make(map[int]*cachedLine),
		maxEntries:  1000,
	}
}

// Language returns the active highlighter's language name.
func (s *Source) Language() string {
	return s.highlighter.Language()
}

// SetHighlighter replaces the highlighter and drops the cache.
func (s *Source) SetHighlighter(h Highlighter) {
	if h == nil {
		h = plainHighlighter{}
	}
	s.highlighter = h
	s.Invalidate()
}

// Invalidate drops all cached lines.
func (s *Source) Invalidate() {
	s.cache = make(map[int]*cachedLine)
}

// SpansFor returns the span cover for a line, recomputing only when the
// line's content changed since the cached entry.
func (s *Source) SpansFor(row int, text string) []Span {
	if c, ok := s.cache[row]; ok && c.text == text {
		return c.spans
	}

	spans := s.highlighter.Highlight(text)

	if len(s.cache) >= s.maxEntries {
		s.cache = make(map[int]*cachedLine)
	}
	s.cache[row] = &cachedLine{text: text, spans: spans}
	return spans
}
