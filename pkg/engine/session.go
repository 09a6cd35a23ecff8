package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/germanamz/minutes/pkg/apierror"
	"github.com/germanamz/minutes/pkg/modeladapter/usage"
	"github.com/germanamz/minutes/pkg/summary"
)

// ErrBusy is returned when Summarize is called while the session is
// dispatching.
var ErrBusy = errors.New("engine: session: a summarization is already in progress")

// State is the lifecycle state of a Session.
type State int

const (
	StateIdle State = iota
	StateDispatching
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var transitions = map[State][]State{
	StateIdle:        {StateDispatching},
	StateDispatching: {StateSucceeded, StateFailed},
	StateSucceeded:   {StateIdle},
	StateFailed:      {StateIdle},
}

func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Session holds the state of one user's summarization attempts: the current
// lifecycle state, the last summary, the last error, and token usage. Only
// one Summarize may be in flight at a time.
type Session struct {
	id     string
	engine *Engine
	events *EventBus

	mu        sync.Mutex
	state     State
	requestID string
	provider  string
	summary   *summary.Summary
	lastErr   *apierror.Error
	usage     usage.Tracker
}

func newSession(id string, e *Engine) *Session {
	return &Session{
		id:     id,
		engine: e,
		events: e.events,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Summary returns the most recent successful summary.
func (s *Session) Summary() (summary.Summary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary == nil {
		return summary.Summary{}, false
	}
	return *s.summary, true
}

// Err returns the error of the last attempt, or nil.
func (s *Session) Err() *apierror.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}

// Usage returns the token usage accumulated by this session's successful
// cycles.
func (s *Session) Usage() usage.TokenCount { return s.usage.Total() }

// Acknowledge returns a Succeeded or Failed session to Idle. It is a no-op in
// any other state.
func (s *Session) Acknowledge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSucceeded || s.state == StateFailed {
		s.transition(StateIdle)
	}
}

// Summarize runs one cycle for rc. It returns ErrBusy when another cycle is
// in flight; every other error is an *apierror.Error, also kept as Err until
// the next attempt. Validation failures are reported without leaving Idle.
func (s *Session) Summarize(ctx context.Context, rc RequestContext) (Outcome, error) {
	requestID, err := s.begin(rc)
	if err != nil {
		return Outcome{}, err
	}

	out, err := s.engine.run(ctx, requestID, rc)
	if err != nil {
		ae := apierror.From(err)
		s.fail(ae)
		return Outcome{}, ae
	}

	s.succeed(out)
	return out, nil
}

// begin moves the session to Dispatching, or rejects the attempt.
func (s *Session) begin(rc RequestContext) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDispatching {
		return "", ErrBusy
	}
	if s.state != StateIdle {
		s.transition(StateIdle)
	}

	s.lastErr = nil
	s.requestID = ""
	s.provider = rc.ProviderID

	if err := s.engine.Validate(rc); err != nil {
		s.lastErr = apierror.From(err)
		s.publish(EventError, s.lastErr)
		return "", s.lastErr
	}

	s.requestID = uuid.NewString()
	s.transition(StateDispatching)

	return s.requestID, nil
}

func (s *Session) succeed(out Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := out.Summary
	s.summary = &sum
	s.usage.Add(out.Usage)
	s.transition(StateSucceeded)
	s.publish(EventSummaryReady, out)
}

func (s *Session) fail(ae *apierror.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = ae
	s.transition(StateFailed)
	s.publish(EventError, ae)
}

// transition must be called with s.mu held.
func (s *Session) transition(to State) {
	from := s.state
	if !canTransition(from, to) {
		panic(fmt.Sprintf("engine: session %s: invalid transition %s -> %s", s.id, from, to))
	}

	s.state = to
	s.publish(EventStateChanged, StateChange{From: from, To: to})
}

// publish must be called with s.mu held.
func (s *Session) publish(kind EventKind, data any) {
	s.events.Publish(Event{
		Kind:      kind,
		SessionID: s.id,
		RequestID: s.requestID,
		Provider:  s.provider,
		Timestamp: time.Now(),
		Data:      data,
	})
}
