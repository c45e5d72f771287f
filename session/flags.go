package session

// Flags selects a session's role and authentication method at init
// time. Exactly one role flag and exactly one method flag must be set.
type Flags uint16

const (
	FlagClient Flags = 1 << iota
	FlagServer
	FlagChallengeMethod
	FlagDTLSMethod
)

const (
	roleFlags   = FlagClient | FlagServer
	methodFlags = FlagChallengeMethod | FlagDTLSMethod
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// exactlyOne reports whether f has exactly one bit set within mask.
func exactlyOne(f, mask Flags) bool {
	masked := f & mask
	return masked != 0 && masked&(masked-1) == 0
}

// ParamTag identifies which optional-parameter body is present on a
// Params value.
type ParamTag uint8

const (
	ParamChallengeResponse ParamTag = iota
	ParamDTLS
)

// Param is implemented by the optional-parameter bodies a method may
// require at init time (e.g. a shared-key override for the
// challenge-response method, or a DTLS config for the DTLS method).
type Param interface {
	Tag() ParamTag
}
