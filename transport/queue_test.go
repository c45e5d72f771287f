package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueuePutReadRoundTrip(t *testing.T) {
	q := newQueue(64)

	n := q.put([]byte("hello"))
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, q.len())

	buf := make([]byte, 5)
	n = q.read(buf)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf))
	assert.Equal(t, 0, q.len())
}

func TestQueueOverflowDropsNewest(t *testing.T) {
	q := newQueue(8) // rounds up to minQueueCapacity

	big := make([]byte, minQueueCapacity+100)
	for i := range big {
		big[i] = byte(i)
	}

	accepted := q.put(big)
	assert.Equal(t, minQueueCapacity, accepted, "overflow must drop the newest (tail) bytes")
	assert.Equal(t, minQueueCapacity, q.len())
}

func TestQueuePeekDoesNotConsume(t *testing.T) {
	q := newQueue(64)
	q.put([]byte("abc"))

	buf := make([]byte, 3)
	n := q.peek(buf)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, q.len(), "peek must not remove bytes")
}

func TestRecvQueueBlocksUntilData(t *testing.T) {
	r := newRecvQueue(64)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	go func() {
		time.Sleep(20 * time.Millisecond)
		r.PutRecv([]byte("x"))
	}()

	buf := make([]byte, 1)
	n, err := r.Recv(ctx, buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecvQueueTimesOut(t *testing.T) {
	r := newRecvQueue(64)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	buf := make([]byte, 1)
	_, err := r.Recv(ctx, buf)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
