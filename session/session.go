package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/quietkey/peerauth/crypto"
	"github.com/quietkey/peerauth/handshake"
	"github.com/quietkey/peerauth/transport"
	"github.com/sirupsen/logrus"
)

// Session owns one authentication attempt: a role, a method, a
// transport, and the single worker goroutine that drives the method
// to a terminal status. A Session is not reusable once started.
type Session struct {
	instanceID int
	role       handshake.Role
	method     Method
	transport  transport.Transport
	sharedKey  crypto.SharedKey

	mu        sync.Mutex
	onStatus  StatusFunc
	started   bool
	closed    bool
	cancelFn  context.CancelFunc
	done      chan struct{}

	status atomic.Value // Status
}

// New validates params and returns an initialized, unstarted Session.
func New(params Params) (*Session, error) {
	if params.Transport == nil {
		return nil, ErrInvalidParam
	}
	if params.InstanceID < 0 || params.InstanceID >= MaxInstances {
		return nil, ErrNoResource
	}
	if !exactlyOne(params.Flags, roleFlags) {
		return nil, ErrInvalidParam
	}
	if !exactlyOne(params.Flags, methodFlags) {
		return nil, ErrInvalidParam
	}

	role := handshake.Client
	if params.Flags.has(FlagServer) {
		role = handshake.Server
	}

	method := params.Method
	if params.Flags.has(FlagChallengeMethod) {
		if method == nil {
			method = challengeResponseMethod{}
		}
	} else if params.Flags.has(FlagDTLSMethod) && method == nil {
		// The DTLS method has no default: it is out-of-tree and must
		// be supplied explicitly via Params.Method.
		return nil, ErrInvalidParam
	}

	sharedKey := crypto.DefaultSharedKey
	if ov, ok := params.Param.(ChallengeResponseParam); ok {
		sharedKey = ov.SharedKey
	}

	s := &Session{
		instanceID: params.InstanceID,
		role:       role,
		method:     method,
		transport:  params.Transport,
		sharedKey:  sharedKey,
		done:       make(chan struct{}),
	}
	s.status.Store(StatusStarted)

	logrus.WithFields(logrus.Fields{
		"function":    "New",
		"instance_id": s.instanceID,
		"role":        s.role,
	}).Debug("session initialized")

	return s, nil
}

// OnStatus registers the callback invoked synchronously, on the
// worker goroutine, for every status change. It must be called before
// Start: Start hands the worker the callback registered at that
// moment, and a callback registered later is never invoked.
func (s *Session) OnStatus(fn StatusFunc) {
	s.mu.Lock()
	s.onStatus = fn
	s.mu.Unlock()
}

// Start spawns the session's one worker goroutine, which drives
// Method.Run to a terminal status. Calling Start twice returns
// ErrAlreadyStarted; the second call does not spawn a second worker.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	runCtx, cancel := context.WithCancel(ctx)
	s.cancelFn = cancel
	onStatus := s.onStatus
	s.mu.Unlock()

	report := func(status Status) {
		s.status.Store(status)
		logrus.WithFields(logrus.Fields{
			"function":    "Start",
			"instance_id": s.instanceID,
			"role":        s.role,
			"status":      status,
		}).Info("session status changed")
		if onStatus != nil {
			onStatus(status)
		}
	}

	go func() {
		defer close(s.done)
		s.method.Run(runCtx, s.role, s.transport, s.sharedKey, report)
	}()

	return nil
}

// Cancel requests the worker stop at its next opportunity. It is safe
// to call from any goroutine, any number of times, before or after the
// worker reaches a terminal status.
func (s *Session) Cancel() {
	s.mu.Lock()
	cancel := s.cancelFn
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Status returns the most recently observed status. Before Start it
// is StatusStarted.
func (s *Session) Status() Status {
	return s.status.Load().(Status)
}

// Close cancels the worker if still running, waits for it to exit, and
// releases the underlying transport. Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	started := s.started
	cancel := s.cancelFn
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if started {
		<-s.done
	}

	return s.transport.Close()
}
