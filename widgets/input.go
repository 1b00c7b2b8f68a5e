package widgets

import (
	"slices"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/clipboard"
	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

// Input is a single-line text field with cursor support.
//
// Actions registered on the input run before its own editing keys.
// Enter is only consumed when an OnSubmit callback is set, so a surrounding
// Stack can use it to move focus.
type Input struct {
	runtime.KeyHandlerBase

	text      []rune
	cursor    int
	maxLength int
	allowed   func(rune) bool

	activeStyle      backend.Style
	inactiveStyle    backend.Style
	placeholder      string
	placeholderStyle backend.Style
	clipboard        clipboard.Clipboard

	onSubmit func(text string)
	onChange func(text string)
}

// NewInput creates an empty input that accepts printable characters.
func NewInput() *Input {
	return &Input{
		allowed:          unicode.IsPrint,
		activeStyle:      backend.StyleActive,
		inactiveStyle:    backend.StyleInactive,
		placeholderStyle: backend.StyleMuted,
	}
}

// SetPlaceholder sets the text shown while the input is empty and unfocused.
func (i *Input) SetPlaceholder(text string, style backend.Style) {
	i.placeholder = text
	i.placeholderStyle = style
}

// SetStyles sets the focused and unfocused styles.
func (i *Input) SetStyles(active, inactive backend.Style) {
	i.activeStyle = active
	i.inactiveStyle = inactive
}

// SetMaxLength limits the text length in runes; 0 means unlimited.
// A limited input pads its remaining room with underscores.
func (i *Input) SetMaxLength(n int) {
	i.maxLength = max(n, 0)
	if i.maxLength > 0 && len(i.text) > i.maxLength {
		i.text = i.text[:i.maxLength]
		i.cursor = min(i.cursor, len(i.text))
	}
}

// SetAllowed restricts which runes can be typed. nil allows everything.
func (i *Input) SetAllowed(fn func(rune) bool) {
	i.allowed = fn
}

// SetClipboard enables Ctrl+C, Ctrl+X and Ctrl+V.
func (i *Input) SetClipboard(cb clipboard.Clipboard) {
	i.clipboard = cb
}

// OnSubmit sets the callback for when Enter is pressed.
func (i *Input) OnSubmit(fn func(text string)) {
	i.onSubmit = fn
}

// OnChange sets the callback for when text changes.
func (i *Input) OnChange(fn func(text string)) {
	i.onChange = fn
}

// Text returns the current input text.
func (i *Input) Text() string {
	return string(i.text)
}

// SetText sets the input text and moves the cursor to the end.
func (i *Input) SetText(text string) {
	i.text = []rune(text)
	if i.maxLength > 0 && len(i.text) > i.maxLength {
		i.text = i.text[:i.maxLength]
	}
	i.cursor = len(i.text)
}

// Clear empties the input.
func (i *Input) Clear() {
	i.text = nil
	i.cursor = 0
}

// CursorPos returns the cursor position in runes.
func (i *Input) CursorPos() int {
	return i.cursor
}

func (i *Input) AsFocusable() runtime.Focusable { return i }

// Render draws the text, or the placeholder, and parks the device cursor
// at the edit position while focused.
func (i *Input) Render(ctx *runtime.RenderContext) {
	focused := i.IsFocused()
	if focused {
		ctx.SetCursorPosition(backend.Point{X: runewidth.StringWidth(string(i.text[:i.cursor]))})
	}

	text := string(i.text)
	style := i.inactiveStyle
	switch {
	case !focused && len(i.text) == 0:
		text = i.placeholder
		style = i.placeholderStyle
	case focused:
		style = i.activeStyle
	}
	if i.maxLength > 0 {
		text = padRight(text, i.maxLength, '_')
	}
	if text == "" {
		// Keep one cell so layouts do not collapse an empty field.
		text = " "
	}
	ctx.PlaceString(text, style)
}

// BubbleDown edits the text.
func (i *Input) BubbleDown(ev terminal.KeyEvent) bool {
	if i.KeyHandlerBase.BubbleDown(ev) {
		return true
	}
	if ev.Key == terminal.KeyRune && ev.Mod.Has(terminal.ModCtrl) {
		return i.clipboardKey(ev.Rune)
	}

	switch ev.Key {
	case terminal.KeyLeft:
		if ev.Mod.Has(terminal.ModCtrl) {
			i.cursor = i.wordBoundaryLeft()
		} else {
			i.moveCursor(-1)
		}
	case terminal.KeyRight:
		if ev.Mod.Has(terminal.ModCtrl) {
			i.cursor = i.wordBoundaryRight()
		} else {
			i.moveCursor(1)
		}
	case terminal.KeyHome:
		i.cursor = 0
	case terminal.KeyEnd:
		i.cursor = len(i.text)
	case terminal.KeyBackspace:
		if i.cursor > 0 {
			i.cursor--
			i.deleteAtCursor()
		}
	case terminal.KeyDelete:
		i.deleteAtCursor()
	case terminal.KeyEnter:
		if i.onSubmit == nil {
			return false
		}
		i.onSubmit(i.Text())
	case terminal.KeyRune:
		if ev.Mod.Has(terminal.ModAlt) || !i.accepts(ev.Rune) {
			return false
		}
		i.insert([]rune{ev.Rune})
	default:
		return false
	}
	return true
}

func (i *Input) accepts(r rune) bool {
	return r != 0 && (i.allowed == nil || i.allowed(r))
}

func (i *Input) moveCursor(delta int) {
	i.cursor = min(max(i.cursor+delta, 0), len(i.text))
}

func (i *Input) insert(runes []rune) {
	if i.maxLength > 0 {
		room := i.maxLength - len(i.text)
		if room <= 0 {
			return
		}
		if len(runes) > room {
			runes = runes[:room]
		}
	}
	i.text = slices.Insert(i.text, i.cursor, runes...)
	i.cursor += len(runes)
	i.notifyChange()
}

func (i *Input) deleteAtCursor() {
	if i.cursor >= len(i.text) {
		return
	}
	i.text = slices.Delete(i.text, i.cursor, i.cursor+1)
	i.notifyChange()
}

func (i *Input) notifyChange() {
	if i.onChange != nil {
		i.onChange(i.Text())
	}
}

func (i *Input) clipboardKey(r rune) bool {
	if i.clipboard == nil || !i.clipboard.Available() {
		return false
	}
	switch r {
	case 'c':
		if err := i.clipboard.Write(i.Text()); err != nil {
			return false
		}
	case 'x':
		// The text only leaves the field once the clipboard holds it.
		if err := i.clipboard.Write(i.Text()); err != nil {
			return false
		}
		i.Clear()
		i.notifyChange()
	case 'v':
		text, err := i.clipboard.Read()
		if err != nil || text == "" {
			return false
		}
		var runes []rune
		for _, r := range text {
			if i.accepts(r) {
				runes = append(runes, r)
			}
		}
		i.insert(runes)
	default:
		return false
	}
	return true
}

func (i *Input) wordBoundaryLeft() int {
	pos := i.cursor
	for pos > 0 && unicode.IsSpace(i.text[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(i.text[pos-1]) {
		pos--
	}
	return pos
}

func (i *Input) wordBoundaryRight() int {
	pos := i.cursor
	for pos < len(i.text) && !unicode.IsSpace(i.text[pos]) {
		pos++
	}
	for pos < len(i.text) && unicode.IsSpace(i.text[pos]) {
		pos++
	}
	return pos
}
