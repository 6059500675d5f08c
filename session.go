// Package scheme implements a small Scheme interpreter: a lexer and reader
// for s-expressions, a recursive evaluator with lexical closures, and a
// persistent Session that survives across inputs the way a REPL does.
//
// Two policies differ from some Scheme traditions and are worth knowing:
// only #f is falsy (0, "" and () are all truthy), and the comparison
// procedures =, < and > chain over any number of arguments, so (< 1 2 3)
// asks whether the whole sequence is ascending.
package scheme

import (
	"strings"

	"github.com/google/uuid"
)

// Goodbye is printed when a session is asked to evaluate "exit" or "quit".
const Goodbye = "👋 Goodbye and thanks for all the fish!"

// Session owns one root environment that persists across Eval calls.
// Definitions accumulate: a name bound by one input is visible to all
// later inputs. Sessions are independent and not safe for concurrent use.
type Session struct {
	ID   uuid.UUID
	root *Env
}

// NewSession returns a fresh session with the native procedures installed
// in its root frame.
func NewSession() *Session {
	s := &Session{ID: uuid.New(), root: NewEnv(nil)}
	registerMathBuiltins(s)
	registerCoreBuiltins(s)
	return s
}

// Register installs a native procedure under name in the root frame.
// Host programs use it to extend a session beyond the standard table.
func (s *Session) Register(name string, fn BuiltinFunc) {
	s.root.Define(name, ProcVal(&Proc{Name: name, Builtin: fn}))
}

// Eval reads every expression in source and evaluates them in order
// against the session's root environment, returning the last value.
// The first error aborts the remainder of the input, but bindings made
// before the failure stay in effect. Empty input yields the empty list.
func (s *Session) Eval(source string) (Value, error) {
	exprs, err := ParseSource(source)
	if err != nil {
		return Value{}, err
	}
	result := Empty
	for _, e := range exprs {
		v, err := Eval(e, s.root)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

// EvalLine is the line-oriented surface a REPL or chat host wants: it
// always returns printable text, never an error. Blank input yields "",
// the words exit and quit yield Goodbye, errors yield their phase-labeled
// message, and anything else yields the rendered value.
func (s *Session) EvalLine(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if text == "exit" || text == "quit" {
		return Goodbye
	}
	v, err := s.Eval(text)
	if err != nil {
		return err.Error()
	}
	return Render(v)
}
