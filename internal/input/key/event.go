package key

import (
	"strings"
	"unicode"
)

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable returns true if this event inserts a visible character.
// Tab counts as printable: it is buffer content.
func (e Event) IsPrintable() bool {
	if e.Key == KeyTab && e.Modifiers == ModNone {
		return true
	}
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if Ctrl or Alt is held. For character events
// Shift is part of the character itself and does not count.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt) != 0
	}
	return e.Modifiers != ModNone
}

// IsDigit returns true for an unmodified decimal digit.
func (e Event) IsDigit() bool {
	return e.IsRune() && !e.IsModified() && e.Rune >= '0' && e.Rune <= '9'
}

// String returns a canonical representation used as the binding-table key.
// Examples: "a", "C-q", "Enter", "C-Left".
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		parts = append(parts, "Space")
	case e.Key == KeyRune:
		parts = append(parts, string(e.Rune))
	default:
		parts = append(parts, e.Key.String())
	}

	return strings.Join(parts, "-")
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}
