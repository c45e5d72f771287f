package handshake

import (
	"context"

	"github.com/quietkey/peerauth/crypto"
	"github.com/quietkey/peerauth/transport"
	"github.com/sirupsen/logrus"
)

// Run drives a single handshake attempt to a terminal Status. It wraps
// ctx in OverallDeadline so a stalled peer cannot hold the caller past
// that bound, then dispatches to the role-specific state machine.
//
// report, if non-nil, is called synchronously on every status change,
// including the terminal one, in the order they occur.
func Run(ctx context.Context, role Role, tr transport.Transport, key crypto.SharedKey, report StatusFunc) Status {
	if report == nil {
		report = func(Status) {}
	}

	deadlineCtx, cancel := context.WithTimeout(ctx, OverallDeadline)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"function": "Run",
		"role":     role,
	}).Debug("starting handshake")

	var status Status
	switch role {
	case Client:
		status = runClient(deadlineCtx, tr, key, report)
	case Server:
		status = runServer(deadlineCtx, tr, key, report)
	default:
		logrus.WithFields(logrus.Fields{
			"function": "Run",
			"role":     role,
		}).Error("unknown handshake role")
		status = StatusFailed
	}

	report(status)

	logrus.WithFields(logrus.Fields{
		"function": "Run",
		"role":     role,
		"status":   status,
	}).Info("handshake finished")

	return status
}
