package effects

import "github.com/atotto/clipboard"

// SystemClipboard wraps github.com/atotto/clipboard, the ecosystem's
// standard cross-platform clipboard access library (spec.md 6 "Effect
// built-ins"; see SPEC_FULL.md Domain Stack for why this out-of-pack
// dependency is the right fit).
type SystemClipboard struct{}

// NewSystemClipboard creates a Clipboard backed by the OS clipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// IsText reports whether the clipboard currently holds readable text.
func (SystemClipboard) IsText() bool {
	_, err := clipboard.ReadAll()
	return err == nil
}

// Read returns the clipboard's text, or "" on failure or no text.
func (SystemClipboard) Read() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return text
}

// Write replaces the clipboard contents with text, reporting success.
func (SystemClipboard) Write(text string) bool {
	return clipboard.WriteAll(text) == nil
}
