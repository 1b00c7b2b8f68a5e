package widgets

import "testing"

func TestMultilineLabel_Wrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"unlimited", "one two three", 0, []string{"one two three"}},
		{"fills rows", "the quick brown fox", 9, []string{"the quick", "brown fox"}},
		{"newline breaks", "a\n\nb", 5, []string{"a", "", "b"}},
		{"long word keeps its row", "abcdef gh", 3, []string{"abcdef", "gh"}},
		{"collapses spaces", "a   b", 5, []string{"a b"}},
		{"wide runes", "日本 語", 4, []string{"日本", "語"}},
		{"empty", "", 5, nil},
	}
	for _, tt := range tests {
		l := NewMultilineLabel(tt.text)
		l.SetMaxWidth(tt.width)
		got := l.Lines()
		if len(got) != len(tt.want) {
			t.Fatalf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Fatalf("%s: line %d: expected %q, got %q", tt.name, i, tt.want[i], got[i])
			}
		}
	}
}

func TestMultilineLabel_Render(t *testing.T) {
	l := NewMultilineLabel("hello big world")
	l.SetMaxWidth(9)
	got := rows(draw(l, 10, 3))
	want := []string{"hello big", "world", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	l.SetText("x")
	if got := row(draw(l, 10, 1), 0); got != "x" {
		t.Fatalf("expected rewrapped text, got %q", got)
	}
}
