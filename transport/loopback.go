package transport

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
)

// loopbackMTU is the reference carrier's maximum application payload.
const loopbackMTU = 1024

// LoopbackParams configures the reference datagram carrier: the
// address its UDP socket binds for receiving, and the peer address it
// sends to.
type LoopbackParams struct {
	RecvPort int
	SendPort int
	RecvIP   string
	SendIP   string
}

// Loopback is the reference transport: a UDP socket bound to
// RecvPort that feeds the receive queue; the same socket sends
// datagrams to SendPort, the peer's RecvPort. Each datagram carries exactly
// one complete protocol message; no framing is added above this layer.
type Loopback struct {
	recvQueue

	conn       *net.UDPConn
	sendAddr   *net.UDPAddr
	cancel     context.CancelFunc
	recvStopCh chan struct{}
}

// NewLoopback starts the receiver goroutine and returns a ready
// Loopback transport.
func NewLoopback(p LoopbackParams) (*Loopback, error) {
	recvAddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", p.RecvIP, p.RecvPort))
	if err != nil {
		return nil, fmt.Errorf("resolve recv addr: %w", err)
	}
	sendAddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", p.SendIP, p.SendPort))
	if err != nil {
		return nil, fmt.Errorf("resolve send addr: %w", err)
	}

	conn, err := net.ListenUDP("udp", recvAddr)
	if err != nil {
		return nil, fmt.Errorf("listen udp: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &Loopback{
		recvQueue:  newRecvQueue(loopbackMTU),
		conn:       conn,
		sendAddr:   sendAddr,
		cancel:     cancel,
		recvStopCh: make(chan struct{}),
	}

	go l.receiveLoop(ctx)

	return l, nil
}

// receiveLoop reads datagrams off the socket and feeds them into the
// receive queue until ctx is canceled.
func (l *Loopback) receiveLoop(ctx context.Context) {
	defer close(l.recvStopCh)

	buf := make([]byte, loopbackMTU)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, _, err := l.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.WithFields(logrus.Fields{
				"function": "Loopback.receiveLoop",
				"error":    err.Error(),
			}).Debug("udp read error, continuing")
			continue
		}

		if accepted := l.PutRecv(buf[:n]); accepted < n {
			logrus.WithFields(logrus.Fields{
				"function": "Loopback.receiveLoop",
				"dropped":  n - accepted,
			}).Warn("receive queue overflow, dropping newest bytes")
		}
	}
}

// Send writes data to the peer's UDP socket in one datagram.
func (l *Loopback) Send(data []byte) (int, error) {
	if len(data) > loopbackMTU {
		return 0, ErrInvalidParam
	}
	return l.conn.WriteToUDP(data, l.sendAddr)
}

// QueuedSendBytes is always 0: UDP datagram sends are not queued by
// this carrier.
func (l *Loopback) QueuedSendBytes() int { return 0 }

// MaxPayload reports the reference carrier's fixed MTU.
func (l *Loopback) MaxPayload() int { return loopbackMTU }

// Event is a no-op for the loopback carrier; it has no reconnect or
// baud-rate concept to react to.
func (l *Loopback) Event(Event) error { return nil }

// Close stops the receiver goroutine and closes the socket.
func (l *Loopback) Close() error {
	l.cancel()
	err := l.conn.Close()
	<-l.recvStopCh
	return err
}

var _ Transport = (*Loopback)(nil)
