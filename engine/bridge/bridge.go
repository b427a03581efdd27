// Package bridge carries the per-frame conversation between the OS event
// goroutine, which owns the window and every GPU object, and the user-logic
// goroutine, which owns application state. Events flow one way, prepared
// render data and the close acknowledgement flow back; neither side ever
// touches the other's state directly.
package bridge

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrBridgeClosed means the user side is gone. During a render request
	// this is fatal; during the close exchange it simply means the shutdown
	// already happened.
	ErrBridgeClosed = errors.New("bridge: user side disconnected")

	// ErrBusy means a blocking exchange was started while another one was
	// already pending. The event goroutine runs exchanges strictly one at a
	// time, so this always indicates a caller bug.
	ErrBusy = errors.New("bridge: an exchange is already pending")
)

// State is the event-goroutine-side view of the protocol.
type State int

const (
	// StateIdle means no exchange is pending; events may be forwarded and a
	// new exchange may begin.
	StateIdle State = iota

	// StateRenderPending means a render data request is in flight.
	StateRenderPending

	// StateClosePending means the close notice was sent and the close
	// acknowledgement is awaited.
	StateClosePending
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRenderPending:
		return "render pending"
	case StateClosePending:
		return "close pending"
	default:
		return "unknown"
	}
}

// responseKind tags the user side's replies.
type responseKind int

const (
	responseRenderData responseKind = iota
	responseReadyToClose
)

// response is what the user side sends back over the bridge.
type response[D any] struct {
	kind responseKind
	data D
}

// Bridge connects the two goroutines. E is the event type delivered to the
// user side, D the render data type it prepares. The methods split into an
// event-goroutine side (Forward, RequestRenderData, NotifyClose, CloseToUser,
// State) and a user-goroutine side (Receive, SubmitRenderData, AckClose,
// CloseUserSide); each side's methods must only be called from its own
// goroutine.
type Bridge[E, D any] struct {
	toUser   *Queue[E]
	fromUser *Queue[response[D]]

	// state is only touched by the event goroutine.
	state State

	log *zap.Logger
}

// New creates a connected bridge with both directions open.
func New[E, D any](log *zap.Logger) *Bridge[E, D] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge[E, D]{
		toUser:   NewQueue[E](),
		fromUser: NewQueue[response[D]](),
		log:      log,
	}
}

// State returns the event-goroutine-side protocol state.
func (b *Bridge[E, D]) State() State {
	return b.state
}

// Forward delivers an event to the user side without blocking. Events
// forwarded after the user side disconnected are dropped silently; by then
// nothing is listening and the application is shutting down anyway.
func (b *Bridge[E, D]) Forward(ev E) {
	b.toUser.Push(ev)
}

// RequestRenderData sends the render request event and blocks until the user
// side submits render data. Responses of the wrong kind are discarded with a
// warning; exactly one render data response completes the exchange.
//
// Parameters:
//   - request: the event announcing the request to the user side
//
// Returns:
//   - D: the prepared render data
//   - error: ErrBusy if an exchange is already pending, or ErrBridgeClosed if
//     the user side disconnected. Disconnection here is fatal: the frame
//     cannot be drawn and the caller must begin shutdown.
func (b *Bridge[E, D]) RequestRenderData(request E) (D, error) {
	var zero D
	if b.state != StateIdle {
		return zero, ErrBusy
	}
	b.state = StateRenderPending
	b.toUser.Push(request)

	for {
		resp, ok := b.fromUser.Pop()
		if !ok {
			return zero, ErrBridgeClosed
		}
		if resp.kind != responseRenderData {
			b.log.Warn("discarding out-of-order response during render exchange",
				zap.Int("kind", int(resp.kind)))
			continue
		}
		b.state = StateIdle
		return resp.data, nil
	}
}

// NotifyClose sends the close notice and blocks until the user side
// acknowledges that it finished cleanup. Responses of the wrong kind are
// discarded with a warning.
//
// Parameters:
//   - notice: the event announcing the close to the user side
//
// Returns:
//   - error: ErrBusy if an exchange is already pending, or ErrBridgeClosed if
//     the user side already disconnected. Unlike the render exchange a
//     disconnect here is tolerable: the user side is gone either way.
func (b *Bridge[E, D]) NotifyClose(notice E) error {
	if b.state != StateIdle {
		return ErrBusy
	}
	b.state = StateClosePending
	b.toUser.Push(notice)

	for {
		resp, ok := b.fromUser.Pop()
		if !ok {
			return ErrBridgeClosed
		}
		if resp.kind != responseReadyToClose {
			b.log.Warn("discarding stale render data during close exchange")
			continue
		}
		return nil
	}
}

// CloseToUser shuts the event direction, ending the user side's Receive loop.
// Called by the event goroutine once the close exchange has finished.
func (b *Bridge[E, D]) CloseToUser() {
	b.toUser.Close()
}

// Receive blocks for the next event. A false result means the event side shut
// the bridge down and the user loop should exit.
func (b *Bridge[E, D]) Receive() (E, bool) {
	return b.toUser.Pop()
}

// SubmitRenderData answers a render data request.
func (b *Bridge[E, D]) SubmitRenderData(data D) {
	b.fromUser.Push(response[D]{kind: responseRenderData, data: data})
}

// AckClose answers a close notice after user-side cleanup has finished.
func (b *Bridge[E, D]) AckClose() {
	b.fromUser.Push(response[D]{kind: responseReadyToClose})
}

// CloseUserSide shuts the response direction. The user goroutine defers this
// so a panic in user code surfaces as a disconnect instead of a deadlocked
// event goroutine.
func (b *Bridge[E, D]) CloseUserSide() {
	b.fromUser.Close()
}
