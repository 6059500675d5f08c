// lexer.go
package scheme

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LPAREN // "("
	RPAREN // ")"
	QUOTE  // "'"

	// Atoms
	NUMBER
	STRING
	BOOLEAN
	SYMBOL
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // parsed value for literals (int64, string, bool)
	Line    int
	Col     int
}

// Lexer scans a source string into tokens. Whitespace separates tokens and
// ';' comments run to end of line. A bare run of characters is classified
// NUMBER if the whole run parses as a base-10 int64, BOOLEAN for exactly
// "#t"/"#f", else SYMBOL.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Lex tokenizes src and returns the token slice (EOF included).
func Lex(src string) ([]Token, error) {
	return NewLexer(src).Scan()
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

func (l *Lexer) err(msg string) *Error {
	return &Error{Kind: ErrLex, Line: l.line, Col: l.col, Msg: msg}
}

// skipBlanks eats whitespace and ';' comments (to end of line).
func (l *Lexer) skipBlanks() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		case ';':
			for {
				b, ok := l.peek()
				if !ok || b == '\n' {
					break
				}
				l.advance()
			}
			l.start = l.cur
		default:
			return
		}
	}
}

// isDelimiter reports whether b ends an atom run.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\r', '\n', '\t', '(', ')', '\'', '"', ';':
		return true
	default:
		return false
	}
}

// scanString decodes a double-quoted literal. The only escapes the language
// knows are \n, \t, \" and \\; anything else is a lexical error. Newlines
// inside a string are taken literally.
func (l *Lexer) scanString() (string, error) {
	var out strings.Builder
	for !l.isAtEnd() {
		ch, _ := l.advance()
		if ch == '"' {
			return out.String(), nil
		}
		if ch == '\\' {
			esc, ok := l.advance()
			if !ok {
				return "", l.err("unterminated string")
			}
			switch esc {
			case 'n':
				out.WriteByte('\n')
			case 't':
				out.WriteByte('\t')
			case '"':
				out.WriteByte('"')
			case '\\':
				out.WriteByte('\\')
			default:
				return "", l.err(fmt.Sprintf("invalid escape sequence: \\%c", esc))
			}
			continue
		}
		out.WriteByte(ch)
	}
	return "", l.err("unterminated string")
}

// scanAtom consumes a run of non-delimiter bytes and classifies it.
func (l *Lexer) scanAtom() Token {
	for {
		b, ok := l.peek()
		if !ok || isDelimiter(b) {
			break
		}
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	switch lex {
	case "#t":
		return l.addToken(BOOLEAN, true)
	case "#f":
		return l.addToken(BOOLEAN, false)
	}
	if n, convErr := strconv.ParseInt(lex, 10, 64); convErr == nil {
		return l.addToken(NUMBER, n)
	}
	return l.addToken(SYMBOL, lex)
}

func (l *Lexer) scanToken() (Token, error) {
	l.skipBlanks()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.addToken(EOF, nil), nil
	}

	ch, _ := l.advance()
	switch ch {
	case '(':
		return l.addToken(LPAREN, nil), nil
	case ')':
		return l.addToken(RPAREN, nil), nil
	case '\'':
		return l.addToken(QUOTE, nil), nil
	case '"':
		text, err := l.scanString()
		if err != nil {
			return Token{}, err
		}
		return l.addToken(STRING, text), nil
	}
	return l.scanAtom(), nil
}

// Scan tokenizes the entire source and returns tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return l.tokens, nil
		}
	}
}
