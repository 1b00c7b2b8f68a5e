package terminal

// KeySelector is a pattern over key events.
//
// Zero Key matches any key code and zero Rune matches any character. Mods
// must be held, but extra modifiers on the event are allowed.
type KeySelector struct {
	Key  Key
	Rune rune
	Mods ModMask
}

// OnKey selects a named key.
func OnKey(key Key, mods ...ModMask) KeySelector {
	return KeySelector{Key: key, Mods: combine(mods)}
}

// OnRune selects a typed character regardless of key code.
func OnRune(r rune, mods ...ModMask) KeySelector {
	return KeySelector{Rune: r, Mods: combine(mods)}
}

// SelectItem confirms the current item: Enter or Space.
var SelectItem = []KeySelector{OnKey(KeyEnter), OnRune(' ')}

// Match reports whether ev satisfies every present field of the selector.
func (s KeySelector) Match(ev KeyEvent) bool {
	if s.Rune != 0 && ev.Rune != s.Rune {
		return false
	}
	if s.Key != KeyNone && ev.Key != s.Key {
		return false
	}
	return ev.Mod.Has(s.Mods)
}

// MatchAny reports whether any selector matches ev.
func MatchAny(selectors []KeySelector, ev KeyEvent) bool {
	for _, s := range selectors {
		if s.Match(ev) {
			return true
		}
	}
	return false
}
