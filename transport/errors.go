package transport

import "errors"

var (
	// ErrInvalidParam is returned for a nil/invalid handle or a send
	// whose length exceeds MaxPayload.
	ErrInvalidParam = errors.New("transport: invalid parameter")

	// ErrClosed is returned by Direct.Send after that transport has
	// been closed.
	ErrClosed = errors.New("transport: closed")
)
