package widgets

import (
	"testing"

	"github.com/odvcencio/cellframe/runtime"
	"github.com/odvcencio/cellframe/terminal"
)

func newHost() (*runtime.Container, *Button) {
	main := NewButton("main")
	host := runtime.NewContainer(main)
	host.FocusChange(true)
	return host, main
}

func TestPopup_OverlaysAndReturnsFocus(t *testing.T) {
	host, main := newHost()
	p := NewPopup().SetPosition(2, 1, 10).Add(NewLabel("hi")).AddClose("ok")

	p.Show(host)
	if !p.IsOpen() || host.Len() != 2 {
		t.Fatalf("expected popup added to host, len=%d", host.Len())
	}
	if main.IsFocused() {
		t.Fatalf("expected popup to take focus from main")
	}

	want := []string{"main", "  ╔══╗", "  ║hi║", "  ║ok║", "  ╚══╝"}
	got := rows(draw(host, 8, 5))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if !press(host, terminal.KeyPress(terminal.KeyEnter))[0] {
		t.Fatalf("expected close button to handle enter")
	}
	if p.IsOpen() || host.Len() != 1 {
		t.Fatalf("expected popup removed, len=%d", host.Len())
	}
	if !main.IsFocused() || host.FocusedIndex() != 0 {
		t.Fatalf("expected focus returned to main")
	}
}

func TestPopup_SizesTextAndFocusesLast(t *testing.T) {
	label := NewLabel("text")
	in := NewInput()
	p := NewPopup().SetMaxSize(12, 5).Add(NewButton("first")).Add(label).Add(in).AndFocus()

	if label.MaxWidth() != 12 {
		t.Fatalf("expected label sized to the popup, got %d", label.MaxWidth())
	}
	host, _ := newHost()
	p.Show(host)
	if !in.IsFocused() {
		t.Fatalf("expected the input added last to take focus")
	}
	p.Show(host)
	if host.Len() != 2 {
		t.Fatalf("expected a second Show to do nothing, len=%d", host.Len())
	}
	p.Close()
	p.Close()
	if host.Len() != 1 {
		t.Fatalf("expected popup closed once, len=%d", host.Len())
	}
}

func TestDialog_Answer(t *testing.T) {
	host, main := newHost()
	got := 0
	cancelled := false
	d := &Dialog[int]{
		Question:    "Pick one",
		Answers:     []Answer[int]{{"one", 1}, {"two", 2}},
		OnAnswered:  func(v int) { got = v },
		OnCancelled: func() { cancelled = true },
	}

	d.Show(host)
	press(host, terminal.KeyPress(terminal.KeyDown), terminal.KeyPress(terminal.KeyEnter))
	if got != 2 || cancelled {
		t.Fatalf("expected answer 2, got %d cancelled=%v", got, cancelled)
	}
	if host.Len() != 1 || !main.IsFocused() {
		t.Fatalf("expected dialog closed and focus restored")
	}

	d.Show(host)
	press(host, terminal.KeyPress(terminal.KeyEnd), terminal.KeyPress(terminal.KeyEnter))
	if !cancelled || host.Len() != 1 {
		t.Fatalf("expected cancel to close the dialog, cancelled=%v len=%d", cancelled, host.Len())
	}
}

func TestDialog_RendersQuestion(t *testing.T) {
	host, _ := newHost()
	d := &Dialog[string]{Question: "Save?", Answers: []Answer[string]{{"yes", "y"}}, CancelText: "no"}
	d.Show(host)

	text := rows(draw(host, 20, 14))
	want := []string{"║Save?║", "║     ║", "║yes  ║", "║     ║", "║no   ║"}
	for i, w := range want {
		if got := text[6+i][5:]; got != w {
			t.Fatalf("row %d: expected %q, got %q", 6+i, w, got)
		}
	}
}
