package crypto

import (
	"crypto/rand"
	"fmt"
)

// NewNonce returns a fresh 32-byte value drawn from the operating
// system's CSPRNG.
func NewNonce() (Nonce, error) {
	var n Nonce
	if _, err := rand.Read(n[:]); err != nil {
		return Nonce{}, fmt.Errorf("generate nonce: %w", err)
	}
	return n, nil
}
