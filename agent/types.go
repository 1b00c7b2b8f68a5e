package agent

import "time"

// Snapshot captures a structured view of the current UI state.
type Snapshot struct {
	Timestamp  time.Time    `json:"timestamp"`
	Tick       uint64       `json:"tick"`
	FPS        int          `json:"fps"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Text       string       `json:"text,omitempty"`
	Widgets    []WidgetInfo `json:"widgets,omitempty"`
	FocusChain []string     `json:"focus_chain,omitempty"`
	FocusedID  string       `json:"focused_id,omitempty"`
	Focused    *WidgetInfo  `json:"focused,omitempty"`
}

// WidgetInfo describes a widget in the UI tree.
type WidgetInfo struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Label     string       `json:"label,omitempty"`
	Value     string       `json:"value,omitempty"`
	FPS       int          `json:"fps,omitempty"`
	Focusable bool         `json:"focusable,omitempty"`
	Focused   bool         `json:"focused,omitempty"`
	Children  []WidgetInfo `json:"children,omitempty"`
}
