package widgets

import "github.com/odvcencio/cellframe/state"

const (
	radioOff = "( ) "
	radioOn  = "(*) "
)

// RadioSet links buttons so that activating one checks it and unchecks the
// rest. Each option carries a value of type T.
type RadioSet[T any] struct {
	buttons  []*Button
	texts    []string
	values   []T
	selected *state.Signal[int]
	onChange func(value T)
}

// NewRadioSet creates an empty set with nothing checked.
func NewRadioSet[T any]() *RadioSet[T] {
	return &RadioSet[T]{selected: state.NewSignal(-1)}
}

// Add appends an option and returns the button that selects it.
func (r *RadioSet[T]) Add(text string, value T) *Button {
	index := len(r.buttons)
	b := NewButton(radioOff + text)
	b.OnClick(func(*Button) { r.Check(index) })
	r.buttons = append(r.buttons, b)
	r.texts = append(r.texts, text)
	r.values = append(r.values, value)
	return b
}

// Len returns the number of options.
func (r *RadioSet[T]) Len() int {
	return len(r.buttons)
}

// Check selects option i. Out of range indices are ignored.
func (r *RadioSet[T]) Check(i int) {
	if i < 0 || i >= len(r.buttons) {
		return
	}
	for n, b := range r.buttons {
		marker := radioOff
		if n == i {
			marker = radioOn
		}
		b.SetText(marker + r.texts[n])
	}
	r.selected.Set(i)
	if r.onChange != nil {
		r.onChange(r.values[i])
	}
}

// CheckedIndex returns the selected option, or -1.
func (r *RadioSet[T]) CheckedIndex() int {
	return r.selected.Get()
}

// Checked returns the selected value. ok is false when nothing is checked.
func (r *RadioSet[T]) Checked() (value T, ok bool) {
	i := r.selected.Get()
	if i < 0 {
		return value, false
	}
	return r.values[i], true
}

// Selection exposes the selected index as a signal for observers.
func (r *RadioSet[T]) Selection() *state.Signal[int] {
	return r.selected
}

// OnChange sets a callback fired with the value of each newly checked option.
func (r *RadioSet[T]) OnChange(fn func(value T)) {
	r.onChange = fn
}

// Stack collects the option buttons into a vertical stack.
func (r *RadioSet[T]) Stack() *Stack {
	s := NewStack(Vertical)
	for _, b := range r.buttons {
		s.Add(b)
	}
	return s
}
