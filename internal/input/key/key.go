// Package key defines decoded keyboard events. The terminal backend
// translates raw tcell events into this representation; everything above
// the backend works only with these.
package key

// Key identifies a pressed key.
type Key uint8

// Keys. KeyRune carries the character in Event.Rune.
const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the canonical key name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}
