package dtlsmethod

import (
	"context"
	"errors"

	"github.com/pion/dtls/v2"
	"github.com/quietkey/peerauth/crypto"
	"github.com/quietkey/peerauth/handshake"
	"github.com/quietkey/peerauth/session"
	"github.com/quietkey/peerauth/transport"
	"github.com/sirupsen/logrus"
)

// ErrNotImplemented is the error Method.Run logs on every call before
// reporting StatusFailed; the DTLS method's transport binding and
// certificate verification are not built out.
var ErrNotImplemented = errors.New("dtlsmethod: not implemented")

// Method is a session.Method stub holding the DTLS configuration a
// real implementation would hand to dtls.Client/dtls.Server.
type Method struct {
	Config *dtls.Config
}

// Param carries a DTLS configuration as a session optional parameter,
// mirroring ChallengeResponseParam's role for the other method.
type Param struct {
	Config *dtls.Config
}

// Tag implements session.Param.
func (Param) Tag() session.ParamTag { return session.ParamDTLS }

// Run satisfies session.Method. It always fails: DTLS transport
// binding is out of scope for this module.
func (m Method) Run(_ context.Context, role handshake.Role, _ transport.Transport, _ crypto.SharedKey, report session.StatusFunc) session.Status {
	if report == nil {
		report = func(session.Status) {}
	}

	report(session.StatusStarted)

	logrus.WithFields(logrus.Fields{
		"function": "Method.Run",
		"role":     role,
		"error":    ErrNotImplemented,
	}).Warn("DTLS method invoked but not implemented")

	report(session.StatusFailed)
	return session.StatusFailed
}

var _ session.Method = Method{}
