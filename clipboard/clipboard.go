// Package clipboard provides the clipboard used by text widgets for
// copy, cut and paste.
package clipboard

import "sync"

// Clipboard reads and writes plain text.
type Clipboard interface {
	Available() bool
	Read() (string, error)
	Write(text string) error
}

// MemoryClipboard keeps text in process memory. The zero value is ready to use.
// A nil *MemoryClipboard is available and always empty.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// Available always reports true.
func (c *MemoryClipboard) Available() bool {
	return true
}

// Read returns the stored text.
func (c *MemoryClipboard) Read() (string, error) {
	if c == nil {
		return "", nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

// Write stores text.
func (c *MemoryClipboard) Write(text string) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
	return nil
}

// UnavailableClipboard is a clipboard that holds nothing.
type UnavailableClipboard struct{}

// Available reports false.
func (UnavailableClipboard) Available() bool { return false }

// Read returns an empty string.
func (UnavailableClipboard) Read() (string, error) { return "", nil }

// Write discards text.
func (UnavailableClipboard) Write(string) error { return nil }
