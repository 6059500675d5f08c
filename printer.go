// printer.go: canonical value rendering.
//
// Render is deterministic and structural: equal values always print the
// same text, and for everything except procedures the output reads back
// through the lexer and parser as an equal datum.
package scheme

import (
	"strconv"
	"strings"
)

// Render returns the canonical text of v.
func Render(v Value) string {
	switch v.Tag {
	case VTNum:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTBool:
		if v.Data.(bool) {
			return "#t"
		}
		return "#f"
	case VTStr:
		return quoteString(v.Data.(string))
	case VTSym:
		return v.Data.(string)
	case VTList:
		items := v.Items()
		parts := make([]string, len(items))
		for i, it := range items {
			parts[i] = Render(it)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case VTProc:
		p := v.Data.(*Proc)
		if p.Name != "" {
			return "#<procedure:" + p.Name + ">"
		}
		return "#<procedure>"
	case VTEmpty:
		return "()"
	default:
		return "#<unknown>"
	}
}

// quoteString escapes exactly the sequences the lexer decodes, so a
// rendered string literal re-reads as the same string.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
