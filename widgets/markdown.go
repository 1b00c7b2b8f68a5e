package widgets

import (
	"github.com/odvcencio/cellframe/markdown"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/scroll"
	"github.com/odvcencio/cellframe/terminal"
)

// Markdown shows a rendered markdown document in a scrollable window.
type Markdown struct {
	runtime.KeyHandlerBase
	source    string
	theme     markdown.Theme
	doc       markdown.Document
	lines     []markdown.Line
	width     int
	viewport  *scroll.Viewport
	scrollbar *scroll.Scrollbar
}

// NewMarkdown renders source wrapped to width cells and shows height rows of it.
func NewMarkdown(source string, width, height int) *Markdown {
	m := &Markdown{
		theme:    markdown.DefaultTheme(),
		width:    max(width, 0),
		viewport: scroll.NewViewport(),
	}
	m.viewport.SetViewSize(m.width, max(height, 1))
	m.SetSource(source)
	return m
}

// SetSource replaces the document and scrolls back to the top.
func (m *Markdown) SetSource(source string) {
	m.source = source
	m.doc = markdown.ParseWithTheme([]byte(source), m.theme)
	m.lines = m.doc.Wrap(m.width).Lines
	m.viewport.SetContentSize(m.width, len(m.lines))
	m.viewport.ScrollToStart()
}

// SetTheme re-renders the document with theme, keeping the scroll position.
func (m *Markdown) SetTheme(theme markdown.Theme) {
	m.theme = theme
	offset := m.Scroll()
	m.SetSource(m.source)
	m.ScrollTo(offset)
}

// SetScrollbar draws a vertical scrollbar one column right of the text
// while the document is taller than the window.
func (m *Markdown) SetScrollbar(show bool) {
	if !show {
		m.scrollbar = nil
		return
	}
	bar := scroll.DefaultScrollbar(scroll.Vertical)
	m.scrollbar = &bar
}

// Document returns the rendered, unwrapped document.
func (m *Markdown) Document() markdown.Document {
	return m.doc
}

// Lines returns the number of wrapped rows.
func (m *Markdown) Lines() int {
	return len(m.lines)
}

// Scroll returns the index of the first visible row.
func (m *Markdown) Scroll() int {
	return m.viewport.Offset().Y
}

// ScrollTo moves the window so row is first, clamped so the last page stays full.
func (m *Markdown) ScrollTo(row int) {
	m.viewport.ScrollTo(0, row)
}

func (m *Markdown) AsFocusable() runtime.Focusable { return m }

// Render draws the visible rows.
func (m *Markdown) Render(ctx *runtime.RenderContext) {
	start := m.Scroll()
	end := min(start+m.viewport.ViewSize().Y, len(m.lines))
	for y, line := range m.lines[start:end] {
		x := 0
		for _, span := range line {
			sub := ctx.Derive(x, y, 0)
			sub.PlaceString(span.Text, span.Style)
			w, _ := sub.Size()
			x += w
		}
	}
	if m.scrollbar != nil {
		m.scrollbar.Render(ctx.Derive(m.width+1, 0, 0), m.viewport)
	}
}

// BubbleDown scrolls with the arrow and paging keys once actions decline.
func (m *Markdown) BubbleDown(ev terminal.KeyEvent) bool {
	if m.KeyHandlerBase.BubbleDown(ev) {
		return true
	}
	before := m.Scroll()
	switch ev.Key {
	case terminal.KeyUp:
		m.viewport.ScrollBy(0, -1)
	case terminal.KeyDown:
		m.viewport.ScrollBy(0, 1)
	case terminal.KeyPageUp:
		m.viewport.PageBy(-1)
	case terminal.KeyPageDown:
		m.viewport.PageBy(1)
	case terminal.KeyHome:
		m.viewport.ScrollToStart()
	case terminal.KeyEnd:
		m.viewport.ScrollToEnd()
	default:
		return false
	}
	return m.Scroll() != before
}
