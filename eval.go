// eval.go: the recursive evaluator.
//
// Dispatch order: self-evaluating atoms, then symbol lookup, then special
// forms matched by the head symbol of a list (the head is never looked up
// as a value), then ordinary application. Application evaluates the head,
// requires a Procedure, then evaluates arguments left to right in the
// caller's environment. Closure calls get one fresh frame parented to the
// closure's captured environment, which is what makes scoping lexical.
//
// Evaluation is plain recursion; deeply recursive programs can exhaust the
// goroutine stack. That limitation is accepted rather than papered over.
package scheme

import "fmt"

// Eval evaluates one expression in env and returns its value or the first
// error encountered. Errors never leave the environment half-rolled-back:
// definitions made before the failure stay in effect.
func Eval(expr Value, env *Env) (Value, error) {
	switch expr.Tag {
	case VTSym:
		return env.Get(expr.Data.(string))
	case VTList:
		return evalList(expr.Items(), env)
	case VTEmpty:
		return Value{}, &Error{Kind: ErrTypeMismatch, Msg: "cannot evaluate (): empty application"}
	default:
		// Numbers, booleans, strings, and procedure values are themselves.
		return expr, nil
	}
}

func evalList(items []Value, env *Env) (Value, error) {
	if head := items[0]; head.Tag == VTSym {
		switch head.Data.(string) {
		case "quote":
			return evalQuote(items)
		case "define":
			return evalDefine(items, env)
		case "set!":
			return evalSet(items, env)
		case "lambda":
			return evalLambda(items, env)
		case "begin":
			return evalSeq(items[1:], env)
		case "if":
			return evalIf(items, env)
		case "let":
			return evalLet(items, env)
		case "and":
			return evalAnd(items, env)
		case "or":
			return evalOr(items, env)
		}
	}
	return evalApply(items, env)
}

// evalSeq evaluates exprs in order and returns the value of the last one.
// An empty sequence yields #f.
func evalSeq(exprs []Value, env *Env) (Value, error) {
	result := Bool(false)
	for _, e := range exprs {
		v, err := Eval(e, env)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

// (quote datum) returns datum unevaluated.
func evalQuote(items []Value) (Value, error) {
	if len(items) != 2 {
		return Value{}, errArity("quote", 1, len(items)-1)
	}
	return items[1], nil
}

// (define sym expr) binds in the current frame and returns the bound value.
// (define (name params...) body...) is sugar for binding a named closure.
func evalDefine(items []Value, env *Env) (Value, error) {
	if len(items) < 3 {
		return Value{}, errArity("define", 2, len(items)-1)
	}
	target := items[1]
	switch target.Tag {
	case VTSym:
		if len(items) != 3 {
			return Value{}, errArity("define", 2, len(items)-1)
		}
		name := target.Data.(string)
		v, err := Eval(items[2], env)
		if err != nil {
			return Value{}, err
		}
		if v.Tag == VTProc {
			// Adopt the binding name for rendering anonymous closures.
			if p := v.Data.(*Proc); p.Name == "" {
				p.Name = name
			}
		}
		env.Define(name, v)
		return v, nil
	case VTList:
		sig := target.Items()
		if sig[0].Tag != VTSym {
			return Value{}, errType("define", "a name Symbol", sig[0].Tag)
		}
		name := sig[0].Data.(string)
		params := make([]string, len(sig)-1)
		for i, it := range sig[1:] {
			if it.Tag != VTSym {
				return Value{}, errType("define", "a parameter Symbol", it.Tag)
			}
			params[i] = it.Data.(string)
		}
		v := ProcVal(&Proc{Name: name, Params: params, Body: items[2:], Env: env})
		env.Define(name, v)
		return v, nil
	default:
		return Value{}, errType("define", "a Symbol or signature list", target.Tag)
	}
}

// (set! sym expr) mutates the nearest enclosing frame holding sym.
func evalSet(items []Value, env *Env) (Value, error) {
	if len(items) != 3 {
		return Value{}, errArity("set!", 2, len(items)-1)
	}
	if items[1].Tag != VTSym {
		return Value{}, errType("set!", "a Symbol", items[1].Tag)
	}
	v, err := Eval(items[2], env)
	if err != nil {
		return Value{}, err
	}
	if err := env.Set(items[1].Data.(string), v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// (lambda (params...) body...) captures env by reference; the body is not
// evaluated until the closure is applied.
func evalLambda(items []Value, env *Env) (Value, error) {
	if len(items) < 3 {
		return Value{}, errArityAtLeast("lambda", 2, len(items)-1)
	}
	params, err := paramList(items[1], "lambda")
	if err != nil {
		return Value{}, err
	}
	return ProcVal(&Proc{Params: params, Body: items[2:], Env: env}), nil
}

// (if cond then [else]) evaluates exactly one branch. With no else branch
// and a falsy condition the result is the empty list.
func evalIf(items []Value, env *Env) (Value, error) {
	if len(items) != 3 && len(items) != 4 {
		return Value{}, &Error{Kind: ErrArityMismatch, Msg: fmt.Sprintf("if: expected 2 or 3 arguments, got %d", len(items)-1)}
	}
	cond, err := Eval(items[1], env)
	if err != nil {
		return Value{}, err
	}
	if truthy(cond) {
		return Eval(items[2], env)
	}
	if len(items) == 4 {
		return Eval(items[3], env)
	}
	return Empty, nil
}

// (let ((name expr)...) body...) evaluates every expr in the outer env
// (parallel, non-recursive binding), then runs the body as a begin in one
// fresh child frame holding all the names.
func evalLet(items []Value, env *Env) (Value, error) {
	if len(items) < 3 {
		return Value{}, errArityAtLeast("let", 2, len(items)-1)
	}
	var bindings []Value
	switch items[1].Tag {
	case VTEmpty:
	case VTList:
		bindings = items[1].Items()
	default:
		return Value{}, errType("let", "a binding list", items[1].Tag)
	}

	names := make([]string, len(bindings))
	values := make([]Value, len(bindings))
	for i, b := range bindings {
		pair := b.Items()
		if len(pair) != 2 || pair[0].Tag != VTSym {
			return Value{}, errType("let", "a (name value) binding", b.Tag)
		}
		v, err := Eval(pair[1], env)
		if err != nil {
			return Value{}, err
		}
		names[i] = pair[0].Data.(string)
		values[i] = v
	}

	frame := NewEnv(env)
	for i, name := range names {
		frame.Define(name, values[i])
	}
	return evalSeq(items[2:], frame)
}

// (and e...) short-circuits on the first falsy value and returns it; with
// all truthy operands it returns the last value. (and) is #t.
func evalAnd(items []Value, env *Env) (Value, error) {
	result := Bool(true)
	for _, e := range items[1:] {
		v, err := Eval(e, env)
		if err != nil {
			return Value{}, err
		}
		if !truthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

// (or e...) short-circuits on the first truthy value and returns it; with
// all falsy operands (or none) it returns #f.
func evalOr(items []Value, env *Env) (Value, error) {
	for _, e := range items[1:] {
		v, err := Eval(e, env)
		if err != nil {
			return Value{}, err
		}
		if truthy(v) {
			return v, nil
		}
	}
	return Bool(false), nil
}

// evalApply handles ordinary application: head first, then arguments, left
// to right, all in the caller's environment.
func evalApply(items []Value, env *Env) (Value, error) {
	head, err := Eval(items[0], env)
	if err != nil {
		return Value{}, err
	}
	if head.Tag != VTProc {
		return Value{}, errType("application", "a Procedure", head.Tag)
	}
	args := make([]Value, len(items)-1)
	for i, a := range items[1:] {
		v, err := Eval(a, env)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return applyProc(head.Data.(*Proc), args)
}

// applyProc invokes a native or closure procedure on evaluated arguments.
// Closure arity is exact; natives do their own arity checking (their
// contracts are variadic).
func applyProc(p *Proc, args []Value) (Value, error) {
	if p.Builtin != nil {
		return p.Builtin(args)
	}
	if len(args) != len(p.Params) {
		name := p.Name
		if name == "" {
			name = "procedure"
		}
		return Value{}, errArity(name, len(p.Params), len(args))
	}
	frame := NewEnv(p.Env)
	for i, name := range p.Params {
		frame.Define(name, args[i])
	}
	return evalSeq(p.Body, frame)
}

// paramList validates a lambda parameter list and extracts the names.
func paramList(v Value, form string) ([]string, error) {
	switch v.Tag {
	case VTEmpty:
		return nil, nil
	case VTList:
		items := v.Items()
		names := make([]string, len(items))
		for i, it := range items {
			if it.Tag != VTSym {
				return nil, errType(form, "a parameter Symbol", it.Tag)
			}
			names[i] = it.Data.(string)
		}
		return names, nil
	default:
		return nil, errType(form, "a parameter list", v.Tag)
	}
}
