package session

import (
	"errors"

	"github.com/quietkey/peerauth/handshake"
)

var (
	// ErrInvalidParam covers nulls, bad flag combinations, or a missing
	// method-specific required parameter. Oversized sends are rejected
	// by the transport with transport.ErrInvalidParam.
	ErrInvalidParam = errors.New("session: invalid parameter")

	// ErrNoResource is returned when the instance pool is exhausted.
	ErrNoResource = errors.New("session: no resource available")

	// ErrCrypto covers a hash or random-source failure surfaced from
	// the crypto package.
	ErrCrypto = errors.New("session: crypto failure")

	// ErrAlreadyStarted is returned by Start when the session's single
	// worker has already been spawned.
	ErrAlreadyStarted = errors.New("session: already started")

	// ErrCanceled, ErrFailed, and ErrAuthenticationFailed mirror the
	// handshake package's terminal error values.
	ErrCanceled             = handshake.ErrCanceled
	ErrFailed               = handshake.ErrFailed
	ErrAuthenticationFailed = handshake.ErrAuthenticationFailed
)
