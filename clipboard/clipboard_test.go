package clipboard

import "testing"

func TestMemoryClipboard_ReadWrite(t *testing.T) {
	cb := &MemoryClipboard{}
	if !cb.Available() {
		t.Fatal("expected memory clipboard to be available")
	}
	if err := cb.Write("hello"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := cb.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "hello" {
		t.Fatalf("read = %q, want %q", got, "hello")
	}
}

func TestMemoryClipboard_NilReceiver(t *testing.T) {
	var cb *MemoryClipboard
	if err := cb.Write("noop"); err != nil {
		t.Fatalf("nil write failed: %v", err)
	}
	if got, _ := cb.Read(); got != "" {
		t.Fatalf("nil read = %q, want empty", got)
	}
}

func TestUnavailableClipboard(t *testing.T) {
	var cb Clipboard = UnavailableClipboard{}
	if cb.Available() {
		t.Fatal("unavailable clipboard should report unavailable")
	}
	_ = cb.Write("noop")
	if got, _ := cb.Read(); got != "" {
		t.Fatalf("read = %q, want empty", got)
	}
}
