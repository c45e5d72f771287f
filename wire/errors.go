package wire

import "errors"

var (
	// ErrShortBuffer is returned when a buffer is too small to hold a
	// complete message of the expected type.
	ErrShortBuffer = errors.New("wire: buffer too short for message")

	// ErrBadHeader is returned when the leading SOH bytes don't match
	// the protocol magic value.
	ErrBadHeader = errors.New("wire: invalid start-of-header")

	// ErrUnexpectedMessage is returned when the header parses but the
	// message ID does not match what the caller expected in the
	// current handshake state.
	ErrUnexpectedMessage = errors.New("wire: unexpected message id")
)
