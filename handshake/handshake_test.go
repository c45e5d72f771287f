package handshake

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/quietkey/peerauth/crypto"
	"github.com/quietkey/peerauth/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPair drives a client and a server over a linked Direct pair
// concurrently and returns both terminal statuses.
func runPair(t *testing.T, ctx context.Context, clientKey, serverKey crypto.SharedKey) (clientStatus, serverStatus Status) {
	t.Helper()

	client, server := transport.NewDirectPair()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		clientStatus = Run(ctx, Client, client, clientKey, nil)
	}()
	go func() {
		defer wg.Done()
		serverStatus = Run(ctx, Server, server, serverKey, nil)
	}()

	wg.Wait()
	return clientStatus, serverStatus
}

func TestHandshakeHappyPath(t *testing.T) {
	ctx := context.Background()
	key := crypto.DefaultSharedKey

	var clientStatuses, serverStatuses []Status
	var mu sync.Mutex
	record := func(dst *[]Status) StatusFunc {
		return func(s Status) {
			mu.Lock()
			*dst = append(*dst, s)
			mu.Unlock()
		}
	}

	client, server := transport.NewDirectPair()

	var wg sync.WaitGroup
	wg.Add(2)

	var clientStatus, serverStatus Status
	go func() {
		defer wg.Done()
		clientStatus = Run(ctx, Client, client, key, record(&clientStatuses))
	}()
	go func() {
		defer wg.Done()
		serverStatus = Run(ctx, Server, server, key, record(&serverStatuses))
	}()
	wg.Wait()

	assert.Equal(t, StatusSuccessful, clientStatus)
	assert.Equal(t, StatusSuccessful, serverStatus)

	assert.Contains(t, clientStatuses, StatusStarted)
	assert.Contains(t, clientStatuses, StatusSuccessful)
	assert.Contains(t, serverStatuses, StatusStarted)
	assert.Contains(t, serverStatuses, StatusSuccessful)
}

func TestHandshakeServerKeyMismatch(t *testing.T) {
	ctx := context.Background()
	clientKey := crypto.DefaultSharedKey
	serverKey := crypto.SharedKey{0xFF}

	clientStatus, serverStatus := runPair(t, ctx, clientKey, serverKey)

	assert.Equal(t, StatusAuthenticationFailed, clientStatus)
	assert.Equal(t, StatusAuthenticationFailed, serverStatus)
}

func TestHandshakeClientKeyMismatch(t *testing.T) {
	ctx := context.Background()
	clientKey := crypto.SharedKey{0xEE}
	serverKey := crypto.DefaultSharedKey

	clientStatus, serverStatus := runPair(t, ctx, clientKey, serverKey)

	assert.Equal(t, StatusAuthenticationFailed, clientStatus)
	assert.Equal(t, StatusAuthenticationFailed, serverStatus)
}

// TestHandshakeCancellation starts only the server against a carrier
// with nothing arriving, cancels the outer context partway through,
// and requires the server reach a terminal status promptly rather than
// block for the full OverallDeadline.
func TestHandshakeCancellation(t *testing.T) {
	_, server := transport.NewDirectPair()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan Status, 1)
	go func() {
		done <- Run(ctx, Server, server, crypto.DefaultSharedKey, nil)
	}()

	time.Sleep(500 * time.Millisecond)
	cancel()

	select {
	case status := <-done:
		assert.Equal(t, StatusCanceled, status)
	case <-time.After(3500 * time.Millisecond):
		t.Fatal("handshake did not terminate promptly after cancellation")
	}
}

// TestHandshakeCorruptedHeader feeds a malformed ClientChallenge
// straight into the server's receive queue and requires the server
// fail rather than hang or panic.
func TestHandshakeCorruptedHeader(t *testing.T) {
	_, server := transport.NewDirectPair()

	junk := make([]byte, 35)
	junk[0], junk[1] = 0x00, 0x00 // corrupt SOH
	server.PutRecv(junk)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := Run(ctx, Server, server, crypto.DefaultSharedKey, nil)
	assert.Equal(t, StatusFailed, status)
}

// TestHandshakeShortRead delivers a truncated ServerResponse to a
// client and requires it fail rather than hang waiting for the
// remaining bytes that will never arrive.
func TestHandshakeShortRead(t *testing.T) {
	client, _ := transport.NewDirectPair()

	truncated := make([]byte, 50) // full ServerResponse is 67 bytes
	client.PutRecv(truncated)

	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
	defer cancel()

	status := Run(ctx, Client, client, crypto.DefaultSharedKey, nil)
	require.Equal(t, StatusFailed, status)
}
