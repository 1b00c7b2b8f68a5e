// Package terminal defines device-independent key input.
package terminal

import "strings"

// Key identifies a key that is not a plain character.
// Printable input arrives as KeyRune with the character in KeyEvent.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyEscape:    "Esc",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ModMask is a bitmask of held modifier keys.
type ModMask uint8

const (
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt

	ModNone ModMask = 0
)

// Has reports whether every modifier in m is held.
func (m ModMask) Has(mods ModMask) bool {
	return m&mods == mods
}

func (m ModMask) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// KeyEvent is one key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  ModMask
}

// KeyPress builds a named-key event.
func KeyPress(key Key, mods ...ModMask) KeyEvent {
	return KeyEvent{Key: key, Mod: combine(mods)}
}

// RunePress builds a character event.
func RunePress(r rune, mods ...ModMask) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mod: combine(mods)}
}

func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mod == ModNone {
		return name
	}
	return e.Mod.String() + "+" + name
}

func combine(mods []ModMask) ModMask {
	var m ModMask
	for _, mod := range mods {
		m |= mod
	}
	return m
}
