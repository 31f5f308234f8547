package qrcode

import (
	"fmt"
	"io"

	"github.com/mdp/qrterminal/v3"
)

// maxTerminalBytes is the byte-mode capacity of a version 40 symbol at level L.
const maxTerminalBytes = 2953

// RenderTerminal writes a QR code for data to w using Unicode half blocks at
// recovery level L. It is meant for interactive terminals.
func RenderTerminal(w io.Writer, data string) error {
	if w == nil {
		return fmt.Errorf("%w: nil writer", ErrEncodingFailure)
	}
	// qrterminal has no error path for oversized input.
	if len(data) > maxTerminalBytes {
		return fmt.Errorf("%w: %d bytes, terminal rendering supports up to %d", ErrCapacityExceeded, len(data), maxTerminalBytes)
	}
	qrterminal.GenerateHalfBlock(data, qrterminal.L, w)
	return nil
}
