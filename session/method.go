package session

import (
	"context"

	"github.com/quietkey/peerauth/crypto"
	"github.com/quietkey/peerauth/handshake"
	"github.com/quietkey/peerauth/transport"
)

// Status and StatusFunc are the facade's names for the handshake
// package's terminal-status type and callback signature.
type Status = handshake.Status

const (
	StatusStarted              = handshake.StatusStarted
	StatusInProcess            = handshake.StatusInProcess
	StatusSuccessful           = handshake.StatusSuccessful
	StatusCanceled             = handshake.StatusCanceled
	StatusFailed               = handshake.StatusFailed
	StatusAuthenticationFailed = handshake.StatusAuthenticationFailed
)

// StatusFunc is invoked synchronously, on the worker goroutine, for
// every status change including the terminal one.
type StatusFunc = handshake.StatusFunc

// Method drives one authentication attempt to a terminal Status. The
// challenge-response handshake and the DTLS stub both implement it,
// so a Session can run either behind the same facade.
type Method interface {
	Run(ctx context.Context, role handshake.Role, tr transport.Transport, key crypto.SharedKey, report StatusFunc) Status
}

// challengeResponseMethod adapts handshake.Run to the Method
// interface; it is the default method when FlagChallengeMethod is set
// and no explicit Method is supplied.
type challengeResponseMethod struct{}

func (challengeResponseMethod) Run(ctx context.Context, role handshake.Role, tr transport.Transport, key crypto.SharedKey, report StatusFunc) Status {
	return handshake.Run(ctx, role, tr, key, report)
}
