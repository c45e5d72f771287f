package crypto

// SharedKey is the 32-byte pre-shared secret both peers hash their
// nonces against. It is immutable for the lifetime of a session: once
// chosen at session init, it is never reassigned.
type SharedKey [32]byte

// DefaultSharedKey is the compile-time fallback used when a session is
// not given an explicit key override. Callers authenticating real
// peers must supply their own key via session.Params.
var DefaultSharedKey = SharedKey{
	0xBD, 0x84, 0xDC, 0x6E, 0x5C, 0x77, 0x41, 0x58, 0xE8, 0xFB, 0x1D, 0xB9, 0x95, 0x39, 0x20, 0xE4,
	0xC5, 0x03, 0x69, 0x9D, 0xBC, 0x53, 0x08, 0x20, 0x1E, 0xF4, 0x72, 0x8E, 0x90, 0x56, 0x49, 0xA8,
}

// IsZero reports whether the key is the all-zero value, which is never
// a valid shared secret.
func (k SharedKey) IsZero() bool {
	for _, b := range k {
		if b != 0 {
			return false
		}
	}
	return true
}
