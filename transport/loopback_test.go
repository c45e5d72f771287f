package transport

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// freePort asks the kernel for an ephemeral UDP port, then releases it
// immediately so NewLoopback can bind it.
func freePort(t *testing.T) int {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 0})
	require.NoError(t, err)
	port := conn.LocalAddr().(*net.UDPAddr).Port
	require.NoError(t, conn.Close())
	return port
}

func newLoopbackPair(t *testing.T) (*Loopback, *Loopback) {
	portA := freePort(t)
	portB := freePort(t)

	a, err := NewLoopback(LoopbackParams{
		RecvPort: portA, RecvIP: "127.0.0.1",
		SendPort: portB, SendIP: "127.0.0.1",
	})
	require.NoError(t, err)

	b, err := NewLoopback(LoopbackParams{
		RecvPort: portB, RecvIP: "127.0.0.1",
		SendPort: portA, SendIP: "127.0.0.1",
	})
	require.NoError(t, err)

	return a, b
}

func TestLoopbackSendRecv(t *testing.T) {
	a, b := newLoopbackPair(t)
	defer a.Close()
	defer b.Close()

	_, err := a.Send([]byte("hello over udp"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	buf := make([]byte, 64)
	n, err := b.Recv(ctx, buf)
	require.NoError(t, err)
	require.Equal(t, "hello over udp", string(buf[:n]))
}

func TestLoopbackMaxPayload(t *testing.T) {
	a, b := newLoopbackPair(t)
	defer a.Close()
	defer b.Close()

	require.Equal(t, loopbackMTU, a.MaxPayload())
	require.Equal(t, strconv.Itoa(loopbackMTU), strconv.Itoa(b.MaxPayload()))
}
