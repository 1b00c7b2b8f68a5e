package widgets

// Answer is one choice offered by a Dialog.
type Answer[T any] struct {
	Text  string
	Value T
}

// Dialog asks a question in a popup and reports the chosen answer.
// A cancel button is always added after the answers.
type Dialog[T any] struct {
	Question    string
	Answers     []Answer[T]
	CancelText  string
	OnAnswered  func(T)
	OnCancelled func()

	popup *Popup
}

// Show opens the dialog over host.
func (d *Dialog[T]) Show(host PopupHost) {
	if d.popup != nil && d.popup.IsOpen() {
		return
	}
	p := NewPopup()
	if d.Question != "" {
		p.Add(NewMultilineLabel(d.Question)).Add(NewLabel(""))
	}
	for _, answer := range d.Answers {
		value := answer.Value
		b := NewButton(answer.Text)
		b.OnClick(func(*Button) { d.answer(value) })
		p.Add(b)
	}
	cancel := d.CancelText
	if cancel == "" {
		cancel = "Cancel"
	}
	b := NewButton(cancel)
	b.OnClick(func(*Button) { d.cancel() })
	p.Add(NewLabel("")).Add(b)
	d.popup = p
	p.Show(host)
}

// Close dismisses the dialog without calling either callback.
func (d *Dialog[T]) Close() {
	if d.popup != nil {
		d.popup.Close()
	}
}

func (d *Dialog[T]) answer(value T) {
	d.Close()
	if d.OnAnswered != nil {
		d.OnAnswered(value)
	}
}

func (d *Dialog[T]) cancel() {
	d.Close()
	if d.OnCancelled != nil {
		d.OnCancelled()
	}
}
