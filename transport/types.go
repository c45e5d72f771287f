package transport

import "context"

// Event identifies a lifecycle notification delivered from or to a
// carrier. Events are best-effort and never fail a handshake on their
// own; the reference protocol does not consume them directly.
type Event uint8

const (
	EventNone Event = iota
	EventConnect
	EventDisconnect
	EventReconnect
	EventSerialBaudChange
)

// Transport is the capability surface the handshake state machine
// drives. A concrete carrier (Loopback, Direct, or a future serial or
// Bluetooth implementation) satisfies it without the state machine
// ever reaching into carrier-specific details.
type Transport interface {
	// Send writes a complete protocol message. A short write (n !=
	// len(data)) is fatal to the caller, per the reference semantics.
	Send(data []byte) (n int, err error)

	// Recv blocks until at least one byte is available, ctx is done,
	// or a carrier error occurs. It returns as many bytes as are
	// currently queued, up to len(buf).
	Recv(ctx context.Context, buf []byte) (n int, err error)

	// RecvPeek copies queued bytes into buf without consuming them.
	RecvPeek(buf []byte) (n int, err error)

	// PutRecv is called by a carrier to enqueue received bytes. It
	// returns the number of bytes actually accepted; on overflow the
	// queue drops the newest (unaccepted) bytes.
	PutRecv(data []byte) (accepted int)

	// QueuedSendBytes reports bytes waiting in an internal outbound
	// queue, or 0 for carriers (like Loopback) that send directly.
	QueuedSendBytes() int

	// QueuedRecvBytes reports bytes currently queued for receipt.
	QueuedRecvBytes() int

	// QueuedRecvBytesWait blocks until bytes are queued or ctx is
	// done, then reports the queued byte count.
	QueuedRecvBytesWait(ctx context.Context) int

	// MaxPayload reports the carrier's MTU in bytes.
	MaxPayload() int

	// Event delivers a lifecycle notification to the carrier.
	Event(evt Event) error

	// Close releases carrier resources (sockets, receiver goroutines).
	Close() error
}
