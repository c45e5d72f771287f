package handshake

import (
	"errors"
	"time"
)

var (
	// ErrFailed is the generic handshake abort: transport I/O, a
	// decode error, or a short read.
	ErrFailed = errors.New("handshake: failed")

	// ErrAuthenticationFailed is returned when the peer's response did
	// not match the expected hash. A failure the peer reports via a
	// Result message surfaces only as StatusAuthenticationFailed.
	ErrAuthenticationFailed = errors.New("handshake: authentication failed")

	// ErrCanceled is the error value for a handshake stopped by the
	// cancel signal. The handshake itself reports cancellation as
	// StatusCanceled and does not return this value.
	ErrCanceled = errors.New("handshake: canceled")
)

// RXTimeout is the per-read timeout applied to each receive attempt
// during the exchange (AUTH_RX_TIMEOUT_MSEC in the reference C
// implementation).
const RXTimeout = 3000 * time.Millisecond

// OverallDeadline bounds the whole handshake so a stalling peer cannot
// hold a worker indefinitely. The reference implementation had no such
// deadline; this is an added hardening measure.
const OverallDeadline = 30 * time.Second
