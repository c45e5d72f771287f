// Package crypto implements the cryptographic primitives used by the
// challenge-response handshake: SHA-256 digests over a nonce and the
// shared key, nonce generation, and constant-time digest comparison.
//
// Example:
//
//	key := crypto.DefaultSharedKey
//	nonce, _ := crypto.NewNonce()
//	digest, _ := crypto.Hash(nonce, key)
package crypto
