package export

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errNoClipboard = errors.New("no clipboard utility available")

// SystemClipboard writes to the clipboard of the desktop session.
type SystemClipboard struct{}

var _ Clipboard = SystemClipboard{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}
