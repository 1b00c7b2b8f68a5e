// Package widgets provides reusable widgets for terminal UIs.
package widgets

import "github.com/mattn/go-runewidth"

// Orientation is the direction a layout stacks its children.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// truncateString truncates a string to fit within maxWidth.
// Adds "..." if truncated.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int, pad rune) string {
	runes := []rune(s)
	for len(runes) < width {
		runes = append(runes, pad)
	}
	return string(runes)
}
