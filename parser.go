// parser.go: recursive descent from tokens to s-expression Values.
//
// The parser is pure: it never consults an environment, and it produces the
// same Value type the evaluator consumes and returns. One input may hold any
// number of top-level expressions; they come back in source order, which is
// also the order the session evaluates them in.
//
// Error discipline: a ')' with no open list is ErrUnexpectedToken; running
// out of input before a matching ')' (or after a quote mark) is
// ErrUnbalancedParens, which IsIncomplete recognizes so line-based hosts can
// keep reading instead of reporting.
package scheme

// parser walks the EOF-terminated token slice produced by (*Lexer).Scan.
type parser struct {
	toks []Token
	i    int
}

// Parse builds every top-level expression in toks, in source order.
func Parse(toks []Token) ([]Value, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	p := &parser{toks: toks}
	var out []Value
	for !p.atEOF() {
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseSource lexes and parses src in one step.
func ParseSource(src string) ([]Value, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

func (p *parser) atEOF() bool { return p.toks[p.i].Type == EOF }

func (p *parser) next() Token {
	t := p.toks[p.i]
	if t.Type != EOF {
		p.i++
	}
	return t
}

func (p *parser) peek() Token { return p.toks[p.i] }

func (p *parser) expr() (Value, error) {
	t := p.next()
	switch t.Type {
	case NUMBER:
		return Num(t.Literal.(int64)), nil
	case STRING:
		return Str(t.Literal.(string)), nil
	case BOOLEAN:
		return Bool(t.Literal.(bool)), nil
	case SYMBOL:
		return Sym(t.Lexeme), nil
	case QUOTE:
		// 'x reads as (quote x).
		if p.atEOF() {
			return Value{}, &Error{Kind: ErrUnbalancedParens, Line: t.Line, Col: t.Col, Msg: "expected expression after '"}
		}
		inner, err := p.expr()
		if err != nil {
			return Value{}, err
		}
		return ListOf(Sym("quote"), inner), nil
	case LPAREN:
		return p.list(t)
	case RPAREN:
		return Value{}, &Error{Kind: ErrUnexpectedToken, Line: t.Line, Col: t.Col, Msg: "unexpected ')'"}
	default: // EOF; Parse's loop keeps expr from seeing it at the top
		return Value{}, &Error{Kind: ErrUnbalancedParens, Line: t.Line, Col: t.Col, Msg: "unexpected end of input"}
	}
}

// list parses sub-expressions until the ')' matching open.
func (p *parser) list(open Token) (Value, error) {
	var items []Value
	for {
		if p.atEOF() {
			return Value{}, &Error{Kind: ErrUnbalancedParens, Line: open.Line, Col: open.Col, Msg: "expected ')' before end of input"}
		}
		if p.peek().Type == RPAREN {
			p.next()
			return ListOf(items...), nil
		}
		v, err := p.expr()
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
}
