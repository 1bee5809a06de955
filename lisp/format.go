package lisp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/homonoid/hyperlisp/parser/ast"
)

// Format renders v in hyperlisp surface syntax.  Sequences render as
// [e1 e2 ...], rationals as decimal numbers, text as a quoted string literal
// and functions by their display forms.  An absent value renders as the empty
// string, or as () inside a sequence.
func Format(v Value) string {
	if v == nil {
		return ""
	}
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.String()
}

func writeValue(buf *bytes.Buffer, v Value) {
	switch v := v.(type) {
	case nil:
		buf.WriteString("()")
	case *Rational:
		buf.WriteString(formatRational(v))
	case Text:
		buf.WriteString(ast.Quote(string(v)))
	case Sequence:
		buf.WriteString("[")
		for i, x := range v {
			if i > 0 {
				buf.WriteString(" ")
			}
			writeValue(buf, x)
		}
		buf.WriteString("]")
	case fmt.Stringer:
		buf.WriteString(v.String())
	default:
		fmt.Fprintf(buf, "<%s>", TypeName(v))
	}
}

// formatRational renders integral values without a fractional part and any
// other value as the shortest decimal that reads back as the same float64.
func formatRational(r *Rational) string {
	if r.IsInt() {
		return r.x.Num().String()
	}
	return strconv.FormatFloat(r.Float64(), 'f', -1, 64)
}

// Display renders v the way a host prints it: text is written without quotes
// and every other value as Format does.
func Display(v Value) string {
	if s, ok := v.(Text); ok {
		return string(s)
	}
	return Format(v)
}
