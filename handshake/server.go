package handshake

import (
	"context"
	"errors"

	"github.com/quietkey/peerauth/crypto"
	"github.com/quietkey/peerauth/transport"
	"github.com/quietkey/peerauth/wire"
	"github.com/sirupsen/logrus"
)

// runServer drives the responder side: wait for the client's
// challenge, answer it along with a nonce of our own, then wait for
// either the client's response or an early failure notification.
func runServer(ctx context.Context, tr transport.Transport, key crypto.SharedKey, report StatusFunc) Status {
	report(StatusStarted)

	serverNonce, err := crypto.NewNonce()
	if err != nil {
		logServerError("generate server nonce", err)
		return StatusFailed
	}

	clientNonce, status, err := serverAwaitChallenge(ctx, tr)
	if err != nil {
		logServerError("await client challenge", err)
		return status
	}

	if err := sendServerResponse(tr, key, clientNonce, serverNonce); err != nil {
		logServerError("send server response", err)
		return StatusFailed
	}

	report(StatusInProcess)

	return serverAwaitClientResponse(ctx, tr, key, serverNonce)
}

// serverAwaitChallenge reads and validates the ClientChallenge message
// and returns the client's nonce.
func serverAwaitChallenge(ctx context.Context, tr transport.Transport) (crypto.Nonce, Status, error) {
	buf := make([]byte, wire.ClientChallengeLen)
	if err := readFull(ctx, tr, buf); err != nil {
		if errors.Is(err, context.Canceled) {
			return crypto.Nonce{}, StatusCanceled, err
		}
		return crypto.Nonce{}, StatusFailed, err
	}

	chal, err := wire.DecodeClientChallenge(buf)
	if err != nil {
		return crypto.Nonce{}, StatusFailed, err
	}

	return chal.Nonce, StatusInProcess, nil
}

func sendServerResponse(tr transport.Transport, key crypto.SharedKey, clientNonce, serverNonce crypto.Nonce) error {
	digest, err := crypto.Hash(clientNonce, key)
	if err != nil {
		return err
	}

	buf := wire.ServerResponse{Response: digest, Nonce: serverNonce}.Encode()
	n, err := tr.Send(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return ErrFailed
	}
	return nil
}

// serverAwaitClientResponse reads the 3-byte header first so it can
// tell an early Result (the client rejecting us) apart from the
// expected ClientResponse before committing to read either message's
// remaining payload.
func serverAwaitClientResponse(ctx context.Context, tr transport.Transport, key crypto.SharedKey, serverNonce crypto.Nonce) Status {
	header := make([]byte, 3)
	if err := readFull(ctx, tr, header); err != nil {
		if errors.Is(err, context.Canceled) {
			return StatusCanceled
		}
		return StatusFailed
	}

	msgID, err := wire.PeekMsgID(header)
	if err != nil {
		return StatusFailed
	}

	switch msgID {
	case wire.MsgResult:
		return serverHandleEarlyResult(ctx, tr, header)
	case wire.MsgClientResponse:
		return serverVerifyClientResponse(ctx, tr, key, serverNonce, header)
	default:
		return StatusFailed
	}
}

// serverHandleEarlyResult reads the remainder of a Result message the
// client sent to signal it rejected our response.
func serverHandleEarlyResult(ctx context.Context, tr transport.Transport, header []byte) Status {
	rest := make([]byte, wire.ResultLen-len(header))
	if err := readFull(ctx, tr, rest); err != nil {
		if errors.Is(err, context.Canceled) {
			return StatusCanceled
		}
		return StatusFailed
	}

	logrus.WithFields(logrus.Fields{
		"function": "serverHandleEarlyResult",
	}).Error("client rejected server's response, authentication failed")

	return StatusAuthenticationFailed
}

func serverVerifyClientResponse(ctx context.Context, tr transport.Transport, key crypto.SharedKey, serverNonce crypto.Nonce, header []byte) Status {
	rest := make([]byte, wire.ClientResponseLen-len(header))
	if err := readFull(ctx, tr, rest); err != nil {
		if errors.Is(err, context.Canceled) {
			return StatusCanceled
		}
		return StatusFailed
	}

	full := append(append([]byte{}, header...), rest...)
	resp, err := wire.DecodeClientResponse(full)
	if err != nil {
		return StatusFailed
	}

	expected, err := crypto.Hash(serverNonce, key)
	if err != nil {
		return StatusFailed
	}

	failed := !crypto.Equal(expected, resp.Response)
	result := wire.Result{Failed: failed}.Encode()

	n, sendErr := tr.Send(result)
	if sendErr != nil || n != len(result) {
		logServerError("send result", sendErr)
		return StatusFailed
	}

	if failed {
		return StatusAuthenticationFailed
	}
	return StatusSuccessful
}

func logServerError(step string, err error) {
	logrus.WithFields(logrus.Fields{
		"function": "runServer",
		"step":     step,
		"error":    err,
	}).Error("server handshake step failed")
}
