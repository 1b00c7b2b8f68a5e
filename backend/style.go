// Package backend defines the rendering device contract and the closed style model
// shared by the runtime and concrete terminal backends.
package backend

// Color is one entry of the closed console palette.
//
// Default means "inherit the device's ambient color". Transparent means "show
// whatever is underneath" and only has meaning while compositing; a renderer
// that receives it falls back as described on Renderer.ShowString.
type Color uint8

const (
	ColorBlack Color = iota
	ColorDarkBlue
	ColorDarkGreen
	ColorDarkCyan
	ColorDarkRed
	ColorDarkMagenta
	ColorDarkYellow
	ColorGray
	ColorDarkGray
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorYellow
	ColorWhite
	ColorDefault
	ColorTransparent
)

var colorNames = [...]string{
	"black", "dark-blue", "dark-green", "dark-cyan", "dark-red", "dark-magenta",
	"dark-yellow", "gray", "dark-gray", "blue", "green", "cyan", "red", "magenta",
	"yellow", "white", "default", "transparent",
}

// ColorFromInt converts an integer to a Color. Values outside the palette map to ColorDefault.
func ColorFromInt(v int) Color {
	if v < 0 || v > int(ColorTransparent) {
		return ColorDefault
	}
	return Color(v)
}

// String returns the palette name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

// Style is a foreground/background pair. Equality is structural.
type Style struct {
	Foreground Color
	Background Color
}

// NewStyle builds a style from two colors.
func NewStyle(fg, bg Color) Style {
	return Style{Foreground: fg, Background: bg}
}

// DefaultStyle inherits both colors from the device.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// TransparentStyle is see-through on both channels.
func TransparentStyle() Style {
	return Style{Foreground: ColorTransparent, Background: ColorTransparent}
}

// Commonly used styles.
var (
	StyleActive     = Style{Foreground: ColorBlack, Background: ColorWhite}
	StyleInactive   = Style{Foreground: ColorGray, Background: ColorDarkGray}
	StyleDecoration = Style{Foreground: ColorDarkGray, Background: ColorBlack}
	StyleMuted      = Style{Foreground: ColorDarkGray, Background: ColorDefault}
)

// WithForeground returns a copy with the foreground replaced.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy with the background replaced.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// IsTransparent reports whether both channels are transparent.
func (s Style) IsTransparent() bool {
	return s.Foreground == ColorTransparent && s.Background == ColorTransparent
}
