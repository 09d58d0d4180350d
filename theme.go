package chatmd

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the
// rendered output automatically matches any color scheme.
type Theme struct {
	Accent int // Headings
	Muted  int // Language labels, separators, rule lines, URLs
	Quote  int // Blockquote bar and text
	Link   int // Link labels
	Error  int // Stream error messages
	CodeBg int // Code block background
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent: 5,
		Muted:  8,
		Quote:  6,
		Link:   4,
		Error:  1,
		CodeBg: 0,
	}
}
