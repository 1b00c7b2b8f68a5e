package widgets

import (
	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
)

// labelFPS is how often a label too long for its width scrolls by one cell.
const labelFPS = 2

// marqueeGap separates the end of scrolling text from its restart.
const marqueeGap = "   "

// Label shows one line of text. Text longer than MaxWidth scrolls.
type Label struct {
	runtime.WidgetBase
	text     []rune
	loop     []rune
	offset   int
	maxWidth int
	style    backend.Style
}

// NewLabel creates a label with the default style and no width limit.
func NewLabel(text string) *Label {
	l := &Label{style: backend.DefaultStyle()}
	l.SetText(text)
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return string(l.text)
}

// SetText replaces the text and restarts scrolling.
func (l *Label) SetText(text string) {
	l.text = []rune(text)
	l.loop = []rune(text + marqueeGap)
	l.offset = 0
}

// Style returns the text style.
func (l *Label) Style() backend.Style {
	return l.style
}

// SetStyle sets the text style.
func (l *Label) SetStyle(style backend.Style) {
	l.style = style
}

// MaxWidth returns the width limit; 0 means unlimited.
func (l *Label) MaxWidth() int {
	return l.maxWidth
}

// SetMaxWidth limits how many cells the label occupies.
func (l *Label) SetMaxWidth(width int) {
	l.maxWidth = max(width, 0)
}

// FPS is the scrolling rate.
func (l *Label) FPS() int {
	return labelFPS
}

// Update advances scrolling when the text does not fit.
func (l *Label) Update() error {
	if l.scrolls() {
		l.offset = (l.offset + 1) % len(l.loop)
	}
	return nil
}

// Render draws the visible part of the text.
func (l *Label) Render(ctx *runtime.RenderContext) {
	l.render(ctx, l.style)
}

func (l *Label) render(ctx *runtime.RenderContext, style backend.Style) {
	ctx.PlaceString(l.visible(), style)
}

func (l *Label) scrolls() bool {
	return l.maxWidth > 0 && len(l.text) > l.maxWidth
}

// visible returns the window of text currently shown.
// An empty label still occupies one cell.
func (l *Label) visible() string {
	if len(l.text) == 0 {
		return " "
	}
	if !l.scrolls() {
		return string(l.text)
	}
	window := make([]rune, l.maxWidth)
	for i := range window {
		window[i] = l.loop[(l.offset+i)%len(l.loop)]
	}
	return string(window)
}
