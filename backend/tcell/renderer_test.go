package tcell

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/cellframe/backend"
	"github.com/odvcencio/cellframe/terminal"
)

func newSimRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r := NewWithScreen(screen)
	if err := r.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(r.Fini)
	screen.SetSize(w, h)
	return r, screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func waitKeys(t *testing.T, r *Renderer, n int) []terminal.KeyEvent {
	t.Helper()
	var keys []terminal.KeyEvent
	deadline := time.Now().Add(2 * time.Second)
	for len(keys) < n && time.Now().Before(deadline) {
		keys = append(keys, r.Keys()...)
		time.Sleep(time.Millisecond)
	}
	if len(keys) < n {
		t.Fatalf("expected %d keys, got %v", n, keys)
	}
	return keys
}

func TestRenderer_ShowString(t *testing.T) {
	r, screen := newSimRenderer(t, 10, 2)
	r.BeginShow()
	r.SetCursor(backend.Point{X: 2, Y: 1})
	r.ShowString(backend.NewStyle(backend.ColorRed, backend.ColorBlack), "hi")
	r.EndShow()

	cell := cellAt(screen, 2, 1)
	if len(cell.Runes) == 0 || cell.Runes[0] != 'h' {
		t.Fatalf("expected h at (2, 1), got %v", cell.Runes)
	}
	fg, bg, _ := cell.Style.Decompose()
	if fg != tcell.ColorRed || bg != tcell.ColorBlack {
		t.Fatalf("unexpected colors fg=%v bg=%v", fg, bg)
	}
	if got := r.Cursor(); got != (backend.Point{X: 4, Y: 1}) {
		t.Fatalf("expected cursor advanced to (4, 1), got %+v", got)
	}
}

func TestRenderer_TransparentForegroundIsBlank(t *testing.T) {
	r, screen := newSimRenderer(t, 4, 1)
	r.ShowRun(0, 0, backend.NewStyle(backend.ColorTransparent, backend.ColorBlue), "ab")
	r.EndShow()

	cell := cellAt(screen, 1, 0)
	if len(cell.Runes) == 0 || cell.Runes[0] != ' ' {
		t.Fatalf("expected blank cell, got %v", cell.Runes)
	}
}

func TestRenderer_WideRuneKeepsColumns(t *testing.T) {
	r, screen := newSimRenderer(t, 6, 1)
	style := backend.NewStyle(backend.ColorWhite, backend.ColorBlack)
	wide := "日" + string(backend.WideTail)

	r.BeginShow()
	r.SetCursor(backend.Point{})
	r.ShowString(style, wide+"x")
	r.EndShow()
	if got := r.Cursor(); got != (backend.Point{X: 3, Y: 0}) {
		t.Fatalf("expected cursor at column 3, got %+v", got)
	}
	if cell := cellAt(screen, 2, 0); len(cell.Runes) == 0 || cell.Runes[0] != 'x' {
		t.Fatalf("expected x at column 2, got %v", cell.Runes)
	}

	r.BeginShow()
	r.ShowRun(0, 0, style, wide+"y")
	r.EndShow()
	if cell := cellAt(screen, 0, 0); len(cell.Runes) == 0 || cell.Runes[0] != '日' {
		t.Fatalf("expected wide rune kept at column 0, got %v", cell.Runes)
	}
	if cell := cellAt(screen, 2, 0); len(cell.Runes) == 0 || cell.Runes[0] != 'y' {
		t.Fatalf("expected y at column 2, got %v", cell.Runes)
	}
}

func TestRenderer_TranslatesKeys(t *testing.T) {
	r, screen := newSimRenderer(t, 4, 1)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyBacktab, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	keys := waitKeys(t, r, 4)
	want := []terminal.KeyEvent{
		terminal.RunePress('x'),
		terminal.KeyPress(terminal.KeyTab, terminal.ModShift),
		terminal.RunePress('c', terminal.ModCtrl),
		terminal.KeyPress(terminal.KeyEnter),
	}
	for i, w := range want {
		if keys[i] != w {
			t.Fatalf("key %d: expected %v, got %v", i, w, keys[i])
		}
	}
}

func TestRenderer_ClicksOnPress(t *testing.T) {
	r, screen := newSimRenderer(t, 10, 5)
	screen.InjectMouse(3, 2, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(3, 2, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	// The trailing key marks that both mouse events were delivered.
	waitKeys(t, r, 1)
	clicks := r.Clicks()
	if len(clicks) != 1 || clicks[0] != (backend.Point{X: 3, Y: 2}) {
		t.Fatalf("expected one click at (3, 2), got %v", clicks)
	}
}

func TestToColor(t *testing.T) {
	tests := []struct {
		in   backend.Color
		want tcell.Color
	}{
		{backend.ColorDarkBlue, tcell.ColorNavy},
		{backend.ColorGray, tcell.ColorSilver},
		{backend.ColorTransparent, tcell.ColorDefault},
		{backend.Color(200), tcell.ColorDefault},
	}
	for _, tt := range tests {
		if got := toColor(tt.in); got != tt.want {
			t.Fatalf("toColor(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
