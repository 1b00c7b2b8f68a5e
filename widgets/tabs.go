package widgets

import (
	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

// Tab is a titled page.
type Tab struct {
	Title   string
	Content runtime.Widget
}

// Tabs shows a strip of titles above the selected page.
//
// Every page stays registered with the loop, but only the selected one is
// drawn and receives keys. Keys the page declines fall back to the tabs'
// actions, then Left/Right switch pages.
type Tabs struct {
	runtime.Container
	titles        []string
	selected      int
	maxTitle      int
	style         backend.Style
	selectedStyle backend.Style
	onSelect      func(index int)
}

// NewTabs creates a tab container.
func NewTabs(tabs ...Tab) *Tabs {
	t := &Tabs{
		style:         backend.StyleInactive,
		selectedStyle: backend.StyleActive,
	}
	t.SetBubbleUp(t.switchKeys)
	for _, tab := range tabs {
		t.AddTab(tab)
	}
	return t
}

// AddTab appends a page.
func (t *Tabs) AddTab(tab Tab) {
	if tab.Content == nil {
		return
	}
	t.titles = append(t.titles, tab.Title)
	t.Container.Add(tab.Content)
	t.syncFocus()
}

// SetStyles sets the title styles.
func (t *Tabs) SetStyles(normal, selected backend.Style) {
	t.style = normal
	t.selectedStyle = selected
}

// SetMaxTitleWidth truncates titles wider than n cells; 0 means no limit.
func (t *Tabs) SetMaxTitleWidth(n int) {
	t.maxTitle = max(n, 0)
}

// OnSelect sets a callback fired when the selected page changes.
func (t *Tabs) OnSelect(fn func(index int)) {
	t.onSelect = fn
}

// Selected returns the index of the selected page.
func (t *Tabs) Selected() int {
	return t.selected
}

// Select switches to page index, clamped to the valid range.
func (t *Tabs) Select(index int) {
	if t.Len() == 0 {
		return
	}
	index = min(max(index, 0), t.Len()-1)
	if index == t.selected {
		return
	}
	t.selected = index
	t.syncFocus()
	if t.onSelect != nil {
		t.onSelect(index)
	}
}

// syncFocus points container focus at the selected page, or nowhere when the
// page cannot take focus.
func (t *Tabs) syncFocus() {
	if t.Len() == 0 {
		return
	}
	if err := t.FocusIndex(t.selected); err != nil {
		_ = t.SetFocused(nil)
	}
}

func (t *Tabs) AsFocusable() runtime.Focusable { return t }

// Render draws the title strip on the first row and the selected page below it.
func (t *Tabs) Render(ctx *runtime.RenderContext) {
	x := 0
	for i, title := range t.titles {
		label := " " + title + " "
		if t.maxTitle > 0 {
			label = " " + truncateString(title, t.maxTitle) + " "
		}
		style := t.style
		if i == t.selected {
			style = t.selectedStyle
		}
		sub := ctx.Derive(x, 0, 0)
		sub.PlaceString(label, style)
		w, _ := sub.Size()
		x += w
	}
	if page := t.Child(t.selected); page != nil {
		page.Render(ctx.Derive(0, 1, 0))
	}
}

func (t *Tabs) switchKeys(ev terminal.KeyEvent) bool {
	if t.HandleActions(ev) {
		return true
	}
	switch ev.Key {
	case terminal.KeyLeft:
		if t.selected == 0 {
			return false
		}
		t.Select(t.selected - 1)
		return true
	case terminal.KeyRight:
		if t.selected >= t.Len()-1 {
			return false
		}
		t.Select(t.selected + 1)
		return true
	}
	return false
}
