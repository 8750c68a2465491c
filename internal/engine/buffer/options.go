package buffer

// DefaultTabWidth is the tab stop width used when none is configured.
const DefaultTabWidth = 4

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithTabWidth sets the tab stop width used for rendered widths.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		b.SetTabWidth(width)
	}
}
