// Package dtlsmethod is the out-of-scope alternative to the
// challenge-response handshake: a session.Method backed by a DTLS
// configuration instead of the SHA-256 exchange. It exists to give
// the DTLS flag a real, compilable implementation to bind to; Run
// always logs ErrNotImplemented and ends in StatusFailed.
package dtlsmethod
