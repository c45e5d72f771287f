package handshake

import (
	"context"
	"errors"

	"github.com/quietkey/peerauth/transport"
)

// readFull fills buf completely, looping on per-attempt timeouts the
// way the reference implementation loops on AGAIN. ctx carries both
// the overall handshake deadline and the cancel signal: a canceled ctx
// is distinguished from a plain timed-out read attempt so the caller
// can tell StatusCanceled apart from StatusFailed.
func readFull(ctx context.Context, tr transport.Transport, buf []byte) error {
	pos := 0
	for pos < len(buf) {
		if err := ctx.Err(); err != nil {
			return err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, RXTimeout)
		n, err := tr.Recv(attemptCtx, buf[pos:])
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				// AGAIN: this read attempt timed out but the overall
				// handshake deadline and cancel signal are still live.
				continue
			}
			return err
		}

		pos += n
	}
	return nil
}
