package highlight

import "github.com/scribeedit/scribe/internal/renderer/core"

// Theme maps span categories to display styles.
type Theme struct {
	name   string
	styles map[Category]core.Style
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// StyleFor returns the style for a category, falling back to the default
// style for unmapped categories.
func (t *Theme) StyleFor(c Category) core.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return core.DefaultStyle()
}

// DefaultTheme returns the standard color theme.
func DefaultTheme() *Theme {
	return &Theme{
		name: "default",
		styles: map[Category]core.Style{
			Default: core.DefaultStyle(),
			Keyword: core.DefaultStyle().WithForeground(core.ColorFromRGB(203, 75, 22)).Bold(),
			String:  core.DefaultStyle().WithForeground(core.ColorFromRGB(42, 161, 152)),
			Number:  core.DefaultStyle().WithForeground(core.ColorFromRGB(181, 137, 0)),
			Comment: core.DefaultStyle().WithForeground(core.ColorGray),
			Match: core.DefaultStyle().
				WithForeground(core.ColorBlack).
				WithBackground(core.ColorYellow),
			MatchCurrent: core.DefaultStyle().
				WithForeground(core.ColorBlack).
				WithBackground(core.ColorCyan),
		},
	}
}

// MonoTheme returns a theme that styles only search matches, for
// terminals with limited color support.
func MonoTheme() *Theme {
	return &Theme{
		name: "mono",
		styles: map[Category]core.Style{
			Keyword:      core.DefaultStyle().Bold(),
			Comment:      core.DefaultStyle(),
			Match:        core.DefaultStyle().Reverse(),
			MatchCurrent: core.DefaultStyle().Reverse().Bold(),
		},
	}
}

// ThemeByName resolves a configured theme name, defaulting to the
// standard theme for unknown names.
func ThemeByName(name string) *Theme {
	switch name {
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
