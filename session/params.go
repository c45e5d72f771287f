package session

import (
	"github.com/quietkey/peerauth/crypto"
	"github.com/quietkey/peerauth/transport"
)

// MaxInstances bounds InstanceID: the compile-time limit on concurrent
// sessions a caller may address.
const MaxInstances = 256

// Params configures one Session at init time.
type Params struct {
	// Flags selects role and method; see FlagClient, FlagServer,
	// FlagChallengeMethod, FlagDTLSMethod.
	Flags Flags

	// InstanceID identifies this session among at most MaxInstances
	// concurrent ones. Carried through to log fields; the status
	// callback receives only the Status, not the instance id.
	InstanceID int

	// Transport is the carrier the handshake is driven over. Required.
	Transport transport.Transport

	// Method overrides the method New would otherwise select from
	// Flags. Required when FlagDTLSMethod is set; optional for
	// FlagChallengeMethod, which defaults to the built-in
	// challenge-response implementation.
	Method Method

	// Param carries the method-specific optional parameter: a
	// ChallengeResponseParam shared-key override for the
	// challenge-response method, or a method-defined DTLS parameter.
	Param Param
}

// ChallengeResponseParam overrides the compile-time default shared
// key for one session.
type ChallengeResponseParam struct {
	SharedKey crypto.SharedKey
}

// Tag implements Param.
func (ChallengeResponseParam) Tag() ParamTag { return ParamChallengeResponse }
