// errors.go: diagnostic kinds and caret-snippet rendering
//
// Every failure the interpreter reports is an *Error carrying a Kind from
// the fixed taxonomy below. Lexer and parser errors have a 1-based Line and
// a 0-based Col; evaluation errors carry no position (Line == 0), because
// parsed expressions do not retain source spans.
//
// `Pretty` turns a positioned error into a multi-line snippet with a caret
// under the offending column:
//
//	Parse error at 2:11: unexpected ')'
//
//	   1 | (define x
//	   2 |   (+ 1 2)))
//	     |           ^
//
// `IsIncomplete` recognizes the one error a line-based host should treat as
// "keep reading" rather than report: unbalanced parentheses at end of input.
package scheme

import (
	"fmt"
	"strings"
)

// ErrorKind classifies every failure the interpreter can produce.
type ErrorKind int

const (
	ErrLex              ErrorKind = iota // unterminated string or invalid token shape
	ErrUnbalancedParens                  // end of input before a matching ')'
	ErrUnexpectedToken                   // ')' with no open list
	ErrUndefinedSymbol                   // lookup miss across the full environment chain
	ErrArityMismatch                     // wrong argument count to a procedure or form
	ErrTypeMismatch                      // wrong value kind to an operation
	ErrDivisionByZero                    // zero divisor in / or modulo
)

// String returns the stable taxonomy name, e.g. "UnbalancedParens". Hosts
// receive these names in EvalOutcome.Err.Kind and may dispatch on them.
func (k ErrorKind) String() string {
	switch k {
	case ErrLex:
		return "LexError"
	case ErrUnbalancedParens:
		return "UnbalancedParens"
	case ErrUnexpectedToken:
		return "UnexpectedToken"
	case ErrUndefinedSymbol:
		return "UndefinedSymbol"
	case ErrArityMismatch:
		return "ArityMismatch"
	case ErrTypeMismatch:
		return "TypeError"
	case ErrDivisionByZero:
		return "DivisionByZero"
	default:
		return "Error"
	}
}

// label is the human-facing phase prefix used in rendered messages.
func (k ErrorKind) label() string {
	switch k {
	case ErrLex:
		return "Lex error"
	case ErrUnbalancedParens, ErrUnexpectedToken:
		return "Parse error"
	default:
		return "Eval error"
	}
}

// Error is the one diagnostic type shared by the lexer, parser, and
// evaluator. It is always returned behind the error interface; callers that
// need the Kind assert to *Error (or use IsIncomplete).
type Error struct {
	Kind ErrorKind
	Line int // 1-based; 0 for evaluation errors
	Col  int // 0-based column within Line
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind.label(), e.Line, e.Col+1, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind.label(), e.Msg)
}

// IsIncomplete reports whether err means the input stopped mid-expression.
// REPLs use this to prompt for a continuation line instead of reporting.
func IsIncomplete(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == ErrUnbalancedParens
}

// Pretty renders err against the source it came from. Positioned errors get
// a caret-annotated snippet with one line of context on each side; errors
// without a position (and non-*Error values) render as a single line.
func Pretty(src string, err error) string {
	e, ok := err.(*Error)
	if !ok {
		return err.Error()
	}
	if e.Line == 0 {
		return e.Error()
	}
	return prettyErrorString(src, e)
}

func prettyErrorString(src string, e *Error) string {
	lines := strings.Split(src, "\n")
	line, col := e.Line, e.Col+1
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", e.Error())
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}

// errArity builds an ArityMismatch naming the procedure or form.
func errArity(name string, want, got int) *Error {
	return &Error{Kind: ErrArityMismatch, Msg: fmt.Sprintf("%s: expected %d arguments, got %d", name, want, got)}
}

// errArityAtLeast is errArity for variadic floors.
func errArityAtLeast(name string, floor, got int) *Error {
	return &Error{Kind: ErrArityMismatch, Msg: fmt.Sprintf("%s: expected at least %d arguments, got %d", name, floor, got)}
}

// errType builds a TypeError naming the operation and the expected vs.
// actual kind.
func errType(name string, want string, got ValueTag) *Error {
	return &Error{Kind: ErrTypeMismatch, Msg: fmt.Sprintf("%s: expected %s, got %s", name, want, got)}
}
