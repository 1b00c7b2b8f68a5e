package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellframe/backend"
)

var palette = [...]tcell.Color{
	backend.ColorBlack:       tcell.ColorBlack,
	backend.ColorDarkBlue:    tcell.ColorNavy,
	backend.ColorDarkGreen:   tcell.ColorGreen,
	backend.ColorDarkCyan:    tcell.ColorTeal,
	backend.ColorDarkRed:     tcell.ColorMaroon,
	backend.ColorDarkMagenta: tcell.ColorPurple,
	backend.ColorDarkYellow:  tcell.ColorOlive,
	backend.ColorGray:        tcell.ColorSilver,
	backend.ColorDarkGray:    tcell.ColorGray,
	backend.ColorBlue:        tcell.ColorBlue,
	backend.ColorGreen:       tcell.ColorLime,
	backend.ColorCyan:        tcell.ColorAqua,
	backend.ColorRed:         tcell.ColorRed,
	backend.ColorMagenta:     tcell.ColorFuchsia,
	backend.ColorYellow:      tcell.ColorYellow,
	backend.ColorWhite:       tcell.ColorWhite,
	backend.ColorDefault:     tcell.ColorDefault,
	backend.ColorTransparent: tcell.ColorDefault,
}

// toColor maps a palette color to tcell. Transparent falls back to the
// terminal default.
func toColor(c backend.Color) tcell.Color {
	if int(c) >= len(palette) {
		return tcell.ColorDefault
	}
	return palette[c]
}

func toStyle(s backend.Style) tcell.Style {
	return tcell.StyleDefault.Foreground(toColor(s.Foreground)).Background(toColor(s.Background))
}
