package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/cellframe/backend"
)

const (
	ruleWidth  = 24
	bulletMark = "• "
	quoteMark  = "│ "
)

// Parse renders src with the default theme.
func Parse(src []byte) Document {
	return ParseWithTheme(src, DefaultTheme())
}

// ParseWithTheme renders src with theme. Blocks are separated by one blank
// line; the result never starts or ends with a blank line.
func ParseWithTheme(src []byte, theme Theme) Document {
	root := goldmark.New().Parser().Parse(text.NewReader(src))
	r := &renderer{src: src, theme: theme}
	r.blocks(root, theme.Text)
	return Document{Lines: trimBlank(r.lines)}
}

type renderer struct {
	src   []byte
	theme Theme
	lines []Line
}

func (r *renderer) emit(lines ...Line) {
	r.lines = append(r.lines, lines...)
}

// gap adds a separating blank line unless one is already there.
func (r *renderer) gap() {
	if n := len(r.lines); n > 0 && len(r.lines[n-1]) > 0 {
		r.lines = append(r.lines, nil)
	}
}

func (r *renderer) blocks(parent ast.Node, base backend.Style) {
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			lines := r.inline(n, r.theme.Heading)
			marker := Span{Text: strings.Repeat("#", n.Level) + " ", Style: r.theme.Heading}
			if len(lines) == 0 {
				lines = []Line{nil}
			}
			lines[0] = append(Line{marker}, lines[0]...)
			r.emit(lines...)
			r.gap()
		case *ast.Paragraph:
			r.emit(r.inline(n, base)...)
			r.gap()
		case *ast.TextBlock:
			r.emit(r.inline(n, base)...)
		case *ast.ThematicBreak:
			r.emit(Line{{Text: strings.Repeat("─", ruleWidth), Style: r.theme.Rule}})
			r.gap()
		case *ast.FencedCodeBlock:
			r.emit(Highlight(r.raw(n), string(n.Language(r.src)), r.theme)...)
			r.gap()
		case *ast.CodeBlock:
			r.emit(Highlight(r.raw(n), "", r.theme)...)
			r.gap()
		case *ast.HTMLBlock:
			for _, l := range strings.Split(strings.TrimRight(r.raw(n), "\n"), "\n") {
				r.emit(Line{{Text: l, Style: base}})
			}
			r.gap()
		case *ast.List:
			r.list(n, base)
			r.gap()
		case *ast.Blockquote:
			sub := &renderer{src: r.src, theme: r.theme}
			sub.blocks(n, r.theme.Quote)
			for _, l := range trimBlank(sub.lines) {
				r.emit(append(Line{{Text: quoteMark, Style: r.theme.Quote}}, l...))
			}
			r.gap()
		default:
			r.blocks(n, base)
		}
	}
}

func (r *renderer) list(list *ast.List, base backend.Style) {
	number := list.Start
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := bulletMark
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		indent := strings.Repeat(" ", len([]rune(marker)))

		sub := &renderer{src: r.src, theme: r.theme}
		sub.blocks(item, base)
		lines := trimBlank(sub.lines)
		if len(lines) == 0 {
			lines = []Line{nil}
		}
		for i, l := range lines {
			lead := Span{Text: indent, Style: base}
			if i == 0 {
				lead = Span{Text: marker, Style: r.theme.Bullet}
			}
			if len(l) == 0 && i > 0 {
				r.emit(nil)
				continue
			}
			r.emit(append(Line{lead}, l...))
		}
		if !list.IsTight && item.NextSibling() != nil {
			r.gap()
		}
	}
}

// raw returns the unparsed lines of a block.
func (r *renderer) raw(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(r.src))
	}
	return b.String()
}

// inline flattens the inline children of n into lines. Soft breaks become
// spaces and hard breaks start a new line.
func (r *renderer) inline(n ast.Node, style backend.Style) []Line {
	w := &lineWriter{}
	r.walkInline(w, n, style)
	return w.done()
}

func (r *renderer) walkInline(w *lineWriter, parent ast.Node, style backend.Style) {
	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Text:
			w.write(string(n.Segment.Value(r.src)), style)
			if n.HardLineBreak() {
				w.newline()
			} else if n.SoftLineBreak() {
				w.write(" ", style)
			}
		case *ast.String:
			w.write(string(n.Value), style)
		case *ast.CodeSpan:
			cw := &lineWriter{}
			r.walkInline(cw, n, r.theme.Code)
			for _, l := range cw.done() {
				w.writeLine(l)
			}
		case *ast.Emphasis:
			next := r.theme.Emphasis
			if n.Level >= 2 {
				next = r.theme.Strong
			}
			r.walkInline(w, n, next)
		case *ast.Link:
			r.walkInline(w, n, r.theme.Link)
		case *ast.AutoLink:
			w.write(string(n.Label(r.src)), r.theme.Link)
		case *ast.RawHTML:
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				w.write(string(seg.Value(r.src)), style)
			}
		default:
			r.walkInline(w, n, style)
		}
	}
}

// lineWriter accumulates spans, merging neighbours of equal style.
type lineWriter struct {
	lines []Line
	cur   Line
}

func (w *lineWriter) write(s string, style backend.Style) {
	if s == "" {
		return
	}
	if n := len(w.cur); n > 0 && w.cur[n-1].Style == style {
		w.cur[n-1].Text += s
		return
	}
	w.cur = append(w.cur, Span{Text: s, Style: style})
}

func (w *lineWriter) writeLine(l Line) {
	for _, s := range l {
		w.write(s.Text, s.Style)
	}
}

func (w *lineWriter) newline() {
	w.lines = append(w.lines, w.cur)
	w.cur = nil
}

func (w *lineWriter) done() []Line {
	if len(w.cur) > 0 {
		w.newline()
	}
	for i, l := range w.lines {
		w.lines[i] = trimRight(l)
	}
	return w.lines
}

func trimRight(l Line) Line {
	for len(l) > 0 {
		last := &l[len(l)-1]
		last.Text = strings.TrimRight(last.Text, " ")
		if last.Text != "" {
			break
		}
		l = l[:len(l)-1]
	}
	return l
}

func trimBlank(lines []Line) []Line {
	for len(lines) > 0 && len(lines[0]) == 0 {
		lines = lines[1:]
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
