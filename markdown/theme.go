package markdown

import "github.com/odvcencio/cellframe/backend"

// Theme maps markdown elements to styles.
type Theme struct {
	Text     backend.Style
	Heading  backend.Style
	Emphasis backend.Style
	Strong   backend.Style
	Code     backend.Style
	Link     backend.Style
	Quote    backend.Style
	Rule     backend.Style
	Bullet   backend.Style

	// Code block token colors.
	Keyword  backend.Color
	Name     backend.Color
	Function backend.Color
	String   backend.Color
	Number   backend.Color
	Comment  backend.Color
	Operator backend.Color
	Plain    backend.Color
	CodeBack backend.Color
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Text:     backend.DefaultStyle(),
		Heading:  backend.NewStyle(backend.ColorYellow, backend.ColorDefault),
		Emphasis: backend.NewStyle(backend.ColorCyan, backend.ColorDefault),
		Strong:   backend.NewStyle(backend.ColorWhite, backend.ColorDefault),
		Code:     backend.NewStyle(backend.ColorGreen, backend.ColorDarkGray),
		Link:     backend.NewStyle(backend.ColorBlue, backend.ColorDefault),
		Quote:    backend.NewStyle(backend.ColorGray, backend.ColorDefault),
		Rule:     backend.StyleMuted,
		Bullet:   backend.NewStyle(backend.ColorDarkYellow, backend.ColorDefault),

		Keyword:  backend.ColorMagenta,
		Name:     backend.ColorWhite,
		Function: backend.ColorYellow,
		String:   backend.ColorGreen,
		Number:   backend.ColorCyan,
		Comment:  backend.ColorDarkGray,
		Operator: backend.ColorGray,
		Plain:    backend.ColorWhite,
		CodeBack: backend.ColorBlack,
	}
}
