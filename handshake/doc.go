// Package handshake drives the four-message challenge-response
// exchange for both handshake roles. It is transport-agnostic: it
// reads and writes through a transport.Transport and never reaches
// into a concrete carrier.
//
// The client role sends a nonce, verifies the server's hash of that
// nonce, answers the server's own nonce, and waits for a final
// verdict. The server role mirrors this from the other side. Both
// roles share the same read-to-completion discipline: every read for a
// fixed-length message loops on timeouts, checking for cancellation on
// every iteration, and collapses a hard error or short final read to
// StatusFailed, except while the client awaits the final Result, where
// it yields StatusAuthenticationFailed.
package handshake
