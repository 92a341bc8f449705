package export

import "github.com/atotto/clipboard"

// Clipboard receives exported tutorial text
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

// WriteAll replaces the clipboard contents
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found on this system
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
