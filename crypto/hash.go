package crypto

import (
	"crypto/sha256"

	"github.com/sirupsen/logrus"
)

// Nonce is a 32-byte challenge value, freshly generated per session
// per side and never reused.
type Nonce [32]byte

// Hash computes SHA-256 over nonce ‖ key, matching the reference
// protocol's response derivation. The underlying digest never fails
// on fixed-length input; the error return exists so a future backend
// swap (e.g. a hardware crypto engine) can surface AUTH_ERROR_CRYPTO
// without changing the call sites in the handshake package.
func Hash(nonce Nonce, key SharedKey) ([32]byte, error) {
	logrus.WithFields(logrus.Fields{
		"function": "Hash",
	}).Debug("hashing nonce with shared key")

	h := sha256.New()
	h.Write(nonce[:])
	h.Write(key[:])

	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest, nil
}
