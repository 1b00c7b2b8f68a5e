package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
)

// MultilineLabel shows text word-wrapped to MaxWidth cells. Newlines always
// break. A word longer than the width gets a row of its own and is not split.
type MultilineLabel struct {
	runtime.WidgetBase
	text     string
	maxWidth int
	lines    []string
	style    backend.Style
}

// NewMultilineLabel creates a label with no width limit.
func NewMultilineLabel(text string) *MultilineLabel {
	l := &MultilineLabel{text: text, style: backend.DefaultStyle()}
	l.wrap()
	return l
}

// Text returns the unwrapped text.
func (l *MultilineLabel) Text() string {
	return l.text
}

// SetText replaces the text.
func (l *MultilineLabel) SetText(text string) {
	l.text = text
	l.wrap()
}

// MaxWidth returns the wrap width; 0 means unlimited.
func (l *MultilineLabel) MaxWidth() int {
	return l.maxWidth
}

// SetMaxWidth sets the wrap width.
func (l *MultilineLabel) SetMaxWidth(width int) {
	l.maxWidth = max(width, 0)
	l.wrap()
}

// SetStyle sets the text style.
func (l *MultilineLabel) SetStyle(style backend.Style) {
	l.style = style
}

// Lines returns the wrapped rows.
func (l *MultilineLabel) Lines() []string {
	return l.lines
}

// Render draws one row per wrapped line.
func (l *MultilineLabel) Render(ctx *runtime.RenderContext) {
	for i, line := range l.lines {
		ctx.Derive(0, i, 0).PlaceString(line, l.style)
	}
}

func (l *MultilineLabel) wrap() {
	l.lines = nil
	if l.text == "" {
		return
	}
	for _, paragraph := range strings.Split(l.text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			l.lines = append(l.lines, "")
			continue
		}
		line := words[0]
		width := runewidth.StringWidth(line)
		for _, word := range words[1:] {
			w := runewidth.StringWidth(word)
			if l.maxWidth > 0 && width+1+w > l.maxWidth {
				l.lines = append(l.lines, line)
				line, width = word, w
				continue
			}
			line += " " + word
			width += 1 + w
		}
		l.lines = append(l.lines, line)
	}
}
