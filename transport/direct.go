package transport

import "sync"

// directMTU matches the reference UDP carrier's MTU so tests exercise
// the same size limits production code will see.
const directMTU = 1024

// Direct is an in-memory transport pair with no sockets, useful for
// deterministic handshake tests. Send on one side enqueues directly
// into the peer's receive queue instead of going through a
// carrier-consumed outbound queue.
type Direct struct {
	recvQueue

	mu     sync.Mutex
	peer   *Direct
	closed bool
}

// NewDirectPair returns two linked Direct transports; bytes sent on
// one arrive in the other's receive queue.
func NewDirectPair() (a, b *Direct) {
	a = &Direct{recvQueue: newRecvQueue(directMTU)}
	b = &Direct{recvQueue: newRecvQueue(directMTU)}
	a.peer = b
	b.peer = a
	return a, b
}

// Send delivers data directly into the peer's receive queue.
func (d *Direct) Send(data []byte) (int, error) {
	if len(data) > d.MaxPayload() {
		return 0, ErrInvalidParam
	}

	d.mu.Lock()
	closed := d.closed
	peer := d.peer
	d.mu.Unlock()

	if closed {
		return 0, ErrClosed
	}

	return peer.PutRecv(data), nil
}

// QueuedSendBytes is always 0: Direct has no outbound queue, it writes
// straight into the peer's receive queue.
func (d *Direct) QueuedSendBytes() int { return 0 }

// MaxPayload reports the fixed MTU Direct emulates.
func (d *Direct) MaxPayload() int { return directMTU }

// Event is a no-op; Direct has no carrier-specific event handling.
func (d *Direct) Event(Event) error { return nil }

// Close marks the transport closed. It does not affect the peer.
func (d *Direct) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}

var _ Transport = (*Direct)(nil)
