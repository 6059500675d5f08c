// value.go
package scheme

// ValueTag enumerates the runtime kinds a Value may hold.
// The tag determines which Go type Value.Data carries.
type ValueTag int

const (
	VTNum   ValueTag = iota // int64
	VTBool                  // bool
	VTStr                   // string
	VTSym                   // string (the symbol's name)
	VTList                  // []Value, always non-empty
	VTProc                  // *Proc
	VTEmpty                 // the empty list (no payload)
)

// String returns the kind name used in type errors and host output.
func (t ValueTag) String() string {
	switch t {
	case VTNum:
		return "Number"
	case VTBool:
		return "Boolean"
	case VTStr:
		return "String"
	case VTSym:
		return "Symbol"
	case VTList:
		return "List"
	case VTProc:
		return "Procedure"
	case VTEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Value is the universal runtime carrier, shared by the parser (which
// produces trees of them) and the evaluator (which consumes and returns
// them). The union is closed: lists are proper lists only, and a list of
// zero elements is always the canonical Empty.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Empty is the canonical empty list.
var Empty = Value{Tag: VTEmpty}

// Primitive constructors.
func Bool(b bool) Value     { return Value{Tag: VTBool, Data: b} }
func Num(n int64) Value     { return Value{Tag: VTNum, Data: n} }
func Str(s string) Value    { return Value{Tag: VTStr, Data: s} }
func Sym(name string) Value { return Value{Tag: VTSym, Data: name} }

// ListOf builds a proper list; zero items yield Empty.
func ListOf(items ...Value) Value {
	if len(items) == 0 {
		return Empty
	}
	return Value{Tag: VTList, Data: items}
}

// Items returns the elements of a list, or nil for anything else
// (including Empty).
func (v Value) Items() []Value {
	if v.Tag == VTList {
		return v.Data.([]Value)
	}
	return nil
}

// String renders the value in its canonical textual form (printer.go).
func (v Value) String() string { return Render(v) }

// BuiltinFunc is the implementation signature for native procedures. Args
// arrive already evaluated; implementations never see an environment.
type BuiltinFunc func(args []Value) (Value, error)

// Proc is a procedure value: native when Builtin is non-nil, otherwise a
// closure. A closure's Env is the frame chain that was current at its
// definition site; calls build a fresh child of that chain, never of the
// caller's.
type Proc struct {
	Name    string      // for rendering; empty for anonymous lambdas
	Params  []string    // parameter names in order
	Body    []Value     // body expressions, evaluated as a begin
	Env     *Env        // closure environment captured at definition time
	Builtin BuiltinFunc // non-nil for natives
}

// ProcVal wraps *Proc into a Value.
func ProcVal(p *Proc) Value { return Value{Tag: VTProc, Data: p} }

// truthy implements the fixed falsy policy: only #f is falsy. Zero, the
// empty list, and the empty string all count as true.
func truthy(v Value) bool {
	return v.Tag != VTBool || v.Data.(bool)
}
