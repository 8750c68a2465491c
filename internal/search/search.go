// Package search implements incremental full-buffer text search.
//
// A scan walks every line of the buffer and records each occurrence of
// the query in document order. Scans happen only on query keystrokes;
// advancing between matches reuses the recorded list.
package search

import (
	"github.com/scribeedit/scribe/internal/engine/buffer"
)

// Match is the position of one query occurrence. Col is a rune column.
type Match struct {
	Row int
	Col int
}

// State holds the query, its matches in document order, and which match
// is current.
type State struct {
	Query   string
	Matches []Match
	Current int

	// NoWrap stops Next and Prev at the document edges instead of
	// cycling around.
	NoWrap bool
}

// Empty reports whether the state has no matches.
func (s *State) Empty() bool {
	return len(s.Matches) == 0
}

// CurrentMatch returns the active match. Valid only when !Empty().
func (s *State) CurrentMatch() Match {
	return s.Matches[s.Current]
}

// Next advances the current match, wrapping past the last match unless
// NoWrap is set.
func (s *State) Next() {
	if len(s.Matches) == 0 {
		return
	}
	if s.NoWrap && s.Current == len(s.Matches)-1 {
		return
	}
	s.Current = (s.Current + 1) % len(s.Matches)
}

// Prev retreats the current match, wrapping past the first match unless
// NoWrap is set.
func (s *State) Prev() {
	if len(s.Matches) == 0 {
		return
	}
	if s.NoWrap && s.Current == 0 {
		return
	}
	s.Current = (s.Current - 1 + len(s.Matches)) % len(s.Matches)
}

// Scan searches the whole buffer for query and returns a fresh state with
// the match nearest at-or-after the given position selected. An empty
// query yields no matches.
func Scan(buf *buffer.Buffer, query string, from buffer.Position) *State {
	st := &State{Query: query}
	if query == "" {
		return st
	}

	q := []rune(query)
	for row := 0; row < buf.LineCount(); row++ {
		runes := buf.Line(row).Runes()
		for col := 0; col+len(q) <= len(runes); col++ {
			if matchAt(runes, q, col) {
				st.Matches = append(st.Matches, Match{Row: row, Col: col})
			}
		}
	}

	// Select the first match at or after the origin, wrapping to the
	// start of the document when none follows.
	for i, m := range st.Matches {
		pos := buffer.Position{Row: m.Row, Col: m.Col}
		if !pos.Before(from) {
			st.Current = i
			break
		}
	}
	return st
}

// matchAt reports whether q occurs in runes at the given offset.
func matchAt(runes, q []rune, at int) bool {
	for i, r := range q {
		if runes[at+i] != r {
			return false
		}
	}
	return true
}
