package handshake

import (
	"context"
	"errors"

	"github.com/quietkey/peerauth/crypto"
	"github.com/quietkey/peerauth/transport"
	"github.com/quietkey/peerauth/wire"
	"github.com/sirupsen/logrus"
)

// runClient drives the initiator side of the exchange: send a
// challenge, verify the server's response, answer the server's
// challenge, then wait for the final verdict.
func runClient(ctx context.Context, tr transport.Transport, key crypto.SharedKey, report StatusFunc) Status {
	report(StatusStarted)

	nonce, err := crypto.NewNonce()
	if err != nil {
		logClientError("generate client nonce", err)
		return StatusFailed
	}

	if err := sendClientChallenge(tr, nonce); err != nil {
		logClientError("send client challenge", err)
		return StatusFailed
	}

	if ctx.Err() != nil {
		return StatusCanceled
	}

	serverNonce, status, err := clientAwaitServerResponse(ctx, tr, key, nonce)
	if err != nil {
		logClientError("await server response", err)
		return status
	}

	report(StatusInProcess)

	if err := sendClientResponse(tr, key, serverNonce); err != nil {
		logClientError("send client response", err)
		return StatusFailed
	}

	return clientAwaitResult(ctx, tr)
}

func sendClientChallenge(tr transport.Transport, nonce crypto.Nonce) error {
	msg := wire.ClientChallenge{Nonce: nonce}
	buf := msg.Encode()

	n, err := tr.Send(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return ErrFailed
	}
	return nil
}

// clientAwaitServerResponse reads the ServerResponse message, verifies
// the hash the server computed over the client's own nonce, and
// returns the server's nonce for the next step. On hash mismatch it
// makes a best-effort attempt to tell the server and returns
// StatusAuthenticationFailed.
func clientAwaitServerResponse(ctx context.Context, tr transport.Transport, key crypto.SharedKey, clientNonce crypto.Nonce) (crypto.Nonce, Status, error) {
	buf := make([]byte, wire.ServerResponseLen)
	if err := readFull(ctx, tr, buf); err != nil {
		if errors.Is(err, context.Canceled) {
			return crypto.Nonce{}, StatusCanceled, err
		}
		return crypto.Nonce{}, StatusFailed, err
	}

	resp, err := wire.DecodeServerResponse(buf)
	if err != nil {
		return crypto.Nonce{}, StatusFailed, err
	}

	expected, err := crypto.Hash(clientNonce, key)
	if err != nil {
		return crypto.Nonce{}, StatusFailed, err
	}

	if !crypto.Equal(expected, resp.Response) {
		notifyServerOfMismatch(tr)
		return crypto.Nonce{}, StatusAuthenticationFailed, ErrAuthenticationFailed
	}

	return resp.Nonce, StatusInProcess, nil
}

// notifyServerOfMismatch sends a best-effort Result{Failed: true} so
// the server doesn't wait out its full timeout. Send failures here are
// logged and swallowed; they never change the status already decided.
func notifyServerOfMismatch(tr transport.Transport) {
	buf := wire.Result{Failed: true}.Encode()
	if n, err := tr.Send(buf); err != nil || n != len(buf) {
		logrus.WithFields(logrus.Fields{
			"function": "notifyServerOfMismatch",
			"error":    err,
		}).Warn("failed to notify server of authentication mismatch")
	}
}

func sendClientResponse(tr transport.Transport, key crypto.SharedKey, serverNonce crypto.Nonce) error {
	digest, err := crypto.Hash(serverNonce, key)
	if err != nil {
		return err
	}

	buf := wire.ClientResponse{Response: digest}.Encode()
	n, err := tr.Send(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return ErrFailed
	}
	return nil
}

func clientAwaitResult(ctx context.Context, tr transport.Transport) Status {
	buf := make([]byte, wire.ResultLen)
	if err := readFull(ctx, tr, buf); err != nil {
		if errors.Is(err, context.Canceled) {
			return StatusCanceled
		}
		return StatusAuthenticationFailed
	}

	result, err := wire.DecodeResult(buf)
	if err != nil {
		return StatusAuthenticationFailed
	}

	if result.Failed {
		return StatusAuthenticationFailed
	}
	return StatusSuccessful
}

func logClientError(step string, err error) {
	logrus.WithFields(logrus.Fields{
		"function": "runClient",
		"step":     step,
		"error":    err,
	}).Error("client handshake step failed")
}
