// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint8

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Color represents a color value.
// Supports true color (RGB) and the terminal's default color.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack   = Color{R: 0, G: 0, B: 0}
	ColorWhite   = Color{R: 255, G: 255, B: 255}
	ColorRed     = Color{R: 255, G: 0, B: 0}
	ColorGreen   = Color{R: 0, G: 255, B: 0}
	ColorBlue    = Color{R: 0, G: 0, B: 255}
	ColorYellow  = Color{R: 255, G: 255, B: 0}
	ColorCyan    = Color{R: 0, G: 255, B: 255}
	ColorMagenta = Color{R: 255, G: 0, B: 255}
	ColorGray    = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style describes how a cell is drawn.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attribute
}

// DefaultStyle returns a style using the terminal's default colors.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// WithForeground returns a copy of the style with the given foreground.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy of the style with the given background.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// Bold returns a copy of the style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs = s.Attrs.With(AttrBold)
	return s
}

// Reverse returns a copy of the style with reverse video set.
func (s Style) Reverse() Style {
	s.Attrs = s.Attrs.With(AttrReverse)
	return s
}

// Equals returns true if two styles render identically.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attrs == other.Attrs
}

// Cell is a single screen cell: one rune plus its display style.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell returns a blank cell with default styling.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewCell creates a cell for the given rune, computing its display width.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// Equals returns true if two cells render identically.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equals(other.Style)
}

// RuneWidth returns the number of terminal columns the rune occupies.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// ScreenRect is a rectangle in screen coordinates.
// Right and Bottom are exclusive.
type ScreenRect struct {
	Left, Top     int
	Right, Bottom int
}

// Width returns the rectangle width.
func (r ScreenRect) Width() int {
	return r.Right - r.Left
}

// Height returns the rectangle height.
func (r ScreenRect) Height() int {
	return r.Bottom - r.Top
}

// Contains reports whether the point (x, y) is inside the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}
