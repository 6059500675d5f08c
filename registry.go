// registry.go: a handle-keyed collection of sessions for embedding hosts.
//
// The registry guards only its own map; evaluation runs outside the lock,
// so long programs in one session never block creating or closing others.
// Individual sessions remain single-threaded: a host that wants parallel
// evaluation uses one session per conversation, which is the intended
// shape anyway.
package scheme

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// EvalOutcome is the host-facing result of one evaluation: either a
// rendered value or a structured error, never both.
type EvalOutcome struct {
	OK    bool
	Value string
	Err   *ErrorInfo
}

// ErrorInfo carries an error across the host boundary without exposing
// interpreter internals. Kind is the stable taxonomy name, for example
// "UndefinedSymbol" or "DivisionByZero".
type ErrorInfo struct {
	Kind    string
	Message string
}

// Registry maps opaque handles to live sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

// CreateSession makes a fresh session and returns its handle.
func (r *Registry) CreateSession() uuid.UUID {
	s := NewSession()
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s.ID
}

// Get looks up a session by handle.
func (r *Registry) Get(id uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	return s, ok
}

// Evaluate runs source in the session behind id. The error return covers
// registry-level failures only (an unknown handle); interpreter errors
// come back inside the outcome so that hosts can relay them to users
// without unwrapping Go errors.
func (r *Registry) Evaluate(id uuid.UUID, source string) (EvalOutcome, error) {
	s, ok := r.Get(id)
	if !ok {
		return EvalOutcome{}, fmt.Errorf("unknown session: %s", id)
	}
	v, err := s.Eval(source)
	if err != nil {
		return EvalOutcome{Err: &ErrorInfo{Kind: kindOf(err), Message: err.Error()}}, nil
	}
	return EvalOutcome{OK: true, Value: Render(v)}, nil
}

// CloseSession drops the session behind id and reports whether it existed.
func (r *Registry) CloseSession(id uuid.UUID) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	return ok
}

func kindOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Kind.String()
	}
	return "Error"
}
