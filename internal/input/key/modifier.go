package key

// Modifier is a bitmask of modifier keys held during an event.
type Modifier uint8

// Modifier flags.
const (
	ModNone  Modifier = 0
	ModCtrl  Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has returns true if the mask contains the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns the mask with the given modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// HasCtrl returns true if Ctrl is held.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}
