// Package transport decouples the handshake state machine from any
// concrete datagram carrier. It exposes a bounded, byte-granular
// receive queue fed by a carrier-owned producer and drained by the
// handshake worker, plus a pluggable send path.
//
// Transport implementations included here:
//
//   - [Loopback]: the reference carrier, a UDP socket on the
//     loopback interface for each endpoint.
//   - [Direct]: an in-memory pair used by tests that don't need real
//     sockets.
package transport
