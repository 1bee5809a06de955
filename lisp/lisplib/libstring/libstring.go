// Package libstring binds functions on text.
package libstring

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/internal/libutil"
)

// LoadPackage binds the text functions in rt.
func LoadPackage(rt *lisp.Runtime) error {
	return libutil.Register(rt, builtins)
}

var builtins = []*libutil.Builtin{
	libutil.Function("concat", BuiltinConcat),
	libutil.Function("str", BuiltinStr),
	libutil.Function("len", BuiltinLen),
	libutil.Function("upper", BuiltinUpper),
	libutil.Function("lower", BuiltinLower),
	libutil.Function("join", BuiltinJoin),
	libutil.Function("format", BuiltinFormat),
}

// BuiltinConcat joins its text arguments.
func BuiltinConcat(args []lisp.Value) (lisp.Value, error) {
	var buf bytes.Buffer
	for i, arg := range args {
		s, ok := arg.(lisp.Text)
		if !ok {
			return nil, libutil.TypeError(i, "text", arg)
		}
		buf.WriteString(string(s))
	}
	return lisp.Text(buf.String()), nil
}

// BuiltinStr returns the surface syntax of its argument as text.  Text is
// returned unchanged.
func BuiltinStr(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, 1); err != nil {
		return nil, err
	}
	return lisp.Text(lisp.Display(args[0])), nil
}

// BuiltinLen returns the number of characters in text or the number of
// elements in a sequence.
func BuiltinLen(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, 1); err != nil {
		return nil, err
	}
	switch x := args[0].(type) {
	case lisp.Text:
		return lisp.Int(int64(utf8.RuneCountInString(string(x)))), nil
	case lisp.Sequence:
		return lisp.Int(int64(len(x))), nil
	}
	return nil, libutil.TypeError(0, "text or sequence", args[0])
}

func BuiltinUpper(args []lisp.Value) (lisp.Value, error) {
	return mapText(args, strings.ToUpper)
}

func BuiltinLower(args []lisp.Value) (lisp.Value, error) {
	return mapText(args, strings.ToLower)
}

func mapText(args []lisp.Value, fn func(string) string) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, 1); err != nil {
		return nil, err
	}
	s, ok := args[0].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(0, "text", args[0])
	}
	return lisp.Text(fn(string(s))), nil
}

// BuiltinJoin joins the elements of a sequence with a separator.  Elements
// are converted as str converts them.
func BuiltinJoin(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 2, 2); err != nil {
		return nil, err
	}
	seq, ok := args[0].(lisp.Sequence)
	if !ok {
		return nil, libutil.TypeError(0, "sequence", args[0])
	}
	sep, ok := args[1].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(1, "text", args[1])
	}
	parts := make([]string, len(seq))
	for i, x := range seq {
		parts[i] = lisp.Display(x)
	}
	return lisp.Text(strings.Join(parts, string(sep))), nil
}

// BuiltinFormat replaces each {} in its first argument with the next of the
// remaining arguments.  Literal braces are written as {{ and }}.
func BuiltinFormat(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, -1); err != nil {
		return nil, err
	}
	format, ok := args[0].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(0, "text", args[0])
	}
	fvals := args[1:]
	parts, err := parseFormatString(string(format))
	if err != nil {
		return nil, lisp.ErrorConditionf("format-error", "%v", err)
	}
	var buf bytes.Buffer
	anonIndex := 0
	for _, p := range parts {
		if p.typ != formatValue {
			buf.WriteString(p.text)
			continue
		}
		if anonIndex >= len(fvals) {
			return nil, lisp.ErrorConditionf("format-error", "too many formatting directives for supplied values")
		}
		buf.WriteString(lisp.Display(fvals[anonIndex]))
		anonIndex++
	}
	if anonIndex < len(fvals) {
		return nil, lisp.ErrorConditionf("format-error", "too many values for formatting directives")
	}
	return lisp.Text(buf.String()), nil
}

func parseFormatString(f string) ([]formatToken, error) {
	var tokens []formatToken
	for len(f) > 0 {
		i := strings.IndexAny(f, "{}")
		if i < 0 {
			tokens = append(tokens, formatToken{formatText, f})
			break
		}
		if i > 0 {
			tokens = append(tokens, formatToken{formatText, f[:i]})
			f = f[i:]
		}
		switch {
		case strings.HasPrefix(f, "{{"):
			tokens = append(tokens, formatToken{formatText, "{"})
			f = f[2:]
		case strings.HasPrefix(f, "}}"):
			tokens = append(tokens, formatToken{formatText, "}"})
			f = f[2:]
		case strings.HasPrefix(f, "{}"):
			tokens = append(tokens, formatToken{formatValue, "{}"})
			f = f[2:]
		case f[0] == '{':
			return nil, fmt.Errorf("formatting directives must be empty")
		default:
			return nil, fmt.Errorf("unexpected closing brace '}' outside of formatting directive")
		}
	}
	return tokens, nil
}

type formatTokenType uint

const (
	formatText formatTokenType = iota
	formatValue
)

type formatToken struct {
	typ  formatTokenType
	text string
}
