package crypto

import "crypto/subtle"

// Equal compares two 32-byte digests in constant time, avoiding the
// timing side channel a plain memcmp-style comparison would leak.
func Equal(a, b [32]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
