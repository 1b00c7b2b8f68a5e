package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellframe/terminal"
)

var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
}

// translateKey converts a tcell key event. Control letters that have no
// named key become the lowercase letter with ModCtrl.
func translateKey(ev *tcell.EventKey) (terminal.KeyEvent, bool) {
	mods := translateMods(ev.Modifiers())
	key := ev.Key()
	switch {
	case key == tcell.KeyRune:
		r := ev.Rune()
		if mods.Has(terminal.ModCtrl) && r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return terminal.KeyEvent{Key: terminal.KeyRune, Rune: r, Mod: mods}, true
	case key == tcell.KeyBacktab:
		return terminal.KeyEvent{Key: terminal.KeyTab, Mod: mods | terminal.ModShift}, true
	}
	if k, ok := keyMap[key]; ok {
		return terminal.KeyEvent{Key: k, Mod: mods}, true
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		r := 'a' + rune(key-tcell.KeyCtrlA)
		return terminal.KeyEvent{Key: terminal.KeyRune, Rune: r, Mod: mods | terminal.ModCtrl}, true
	}
	return terminal.KeyEvent{}, false
}

func translateMods(m tcell.ModMask) terminal.ModMask {
	var out terminal.ModMask
	if m&tcell.ModShift != 0 {
		out |= terminal.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= terminal.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= terminal.ModAlt
	}
	return out
}
