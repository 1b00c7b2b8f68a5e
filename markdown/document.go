// Package markdown renders markdown source into styled terminal lines.
package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellframe/backend"
)

// Span is a run of text in one style.
type Span struct {
	Text  string
	Style backend.Style
}

// Line is one row of spans.
type Line []Span

// String returns the line's plain text.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the number of cells the line occupies.
func (l Line) Width() int {
	n := 0
	for _, s := range l {
		n += runewidth.StringWidth(s.Text)
	}
	return n
}

// Document is a rendered markdown document.
type Document struct {
	Lines []Line
}

// String returns the document's plain text, one line per row.
func (d Document) String() string {
	rows := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		rows[i] = l.String()
	}
	return strings.Join(rows, "\n")
}

// Wrap breaks lines longer than width cells into several rows.
// Breaks prefer the last space before the limit.
func (d Document) Wrap(width int) Document {
	if width <= 0 {
		return d
	}
	out := Document{Lines: make([]Line, 0, len(d.Lines))}
	for _, line := range d.Lines {
		out.Lines = append(out.Lines, wrapLine(line, width)...)
	}
	return out
}

type styledRune struct {
	r     rune
	width int
	style backend.Style
}

func wrapLine(line Line, width int) []Line {
	var cells []styledRune
	total := 0
	for _, s := range line {
		for _, r := range s.Text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			cells = append(cells, styledRune{r: r, width: w, style: s.Style})
			total += w
		}
	}
	if total <= width {
		return []Line{line}
	}
	var rows []Line
	for total > width {
		fit, used := 0, 0
		for fit < len(cells) && used+cells[fit].width <= width {
			used += cells[fit].width
			fit++
		}
		// A rune wider than the row still goes somewhere.
		fit = max(fit, 1)
		cut := fit
		for i := min(fit, len(cells)-1); i > 0; i-- {
			if cells[i].r == ' ' {
				cut = i
				break
			}
		}
		rows = append(rows, toLine(cells[:cut]))
		cells = cells[cut:]
		for len(cells) > 0 && cells[0].r == ' ' {
			cells = cells[1:]
		}
		total = 0
		for _, c := range cells {
			total += c.width
		}
	}
	if len(cells) > 0 {
		rows = append(rows, toLine(cells))
	}
	return rows
}

func toLine(cells []styledRune) Line {
	var line Line
	for _, c := range cells {
		if n := len(line); n > 0 && line[n-1].Style == c.style {
			line[n-1].Text += string(c.r)
			continue
		}
		line = append(line, Span{Text: string(c.r), Style: c.style})
	}
	return line
}
