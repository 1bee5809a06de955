// Package libutil contains helpers shared by the host library packages.
package libutil

import (
	"math/big"

	"github.com/homonoid/hyperlisp/lisp"
)

// Builtin is a host function definition.
type Builtin struct {
	Name string
	Fn   lisp.HostFunc
}

// Function returns a Builtin that binds fn to name.
func Function(name string, fn lisp.HostFunc) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}

// Alias returns a Builtin that binds the function of b to another name.
func Alias(name string, b *Builtin) *Builtin {
	return &Builtin{Name: name, Fn: b.Fn}
}

// Register binds each builtin in rt.
func Register(rt *lisp.Runtime, builtins []*Builtin) error {
	for _, b := range builtins {
		err := rt.RegisterFunc(b.Name, b.Fn)
		if err != nil {
			return err
		}
	}
	return nil
}

// ArgCount returns an error unless len(args) is between min and max.  A
// negative max means there is no upper bound.
func ArgCount(args []lisp.Value, min, max int) error {
	switch {
	case max == min && len(args) != min:
		return lisp.ErrorConditionf("arity-error", "%d argument(s) found where %d is expected", len(args), min)
	case len(args) < min:
		return lisp.ErrorConditionf("arity-error", "%d argument(s) found where at least %d is expected", len(args), min)
	case max >= 0 && len(args) > max:
		return lisp.ErrorConditionf("arity-error", "%d argument(s) found where at most %d is expected", len(args), max)
	}
	return nil
}

// Rats returns the arguments as fractions.  Rats returns an error if any
// argument is not a rational.
func Rats(args []lisp.Value) ([]*big.Rat, error) {
	xs := make([]*big.Rat, len(args))
	for i, arg := range args {
		r, ok := arg.(*lisp.Rational)
		if !ok {
			return nil, TypeError(i, "rational", arg)
		}
		xs[i] = r.Rat()
	}
	return xs, nil
}

// TypeError returns the error for argument i not having the expected type.
func TypeError(i int, expect string, arg lisp.Value) error {
	return lisp.ErrorConditionf("type-error", "argument %d is not a %s: %s", i+1, expect, lisp.TypeName(arg))
}

// Truthy reports whether v counts as true: anything but nothing, zero, empty
// text and the empty sequence.
func Truthy(v lisp.Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case *lisp.Rational:
		return v.Sign() != 0
	case lisp.Text:
		return v != ""
	case lisp.Sequence:
		return len(v) > 0
	default:
		return true
	}
}

// Bool returns 1 for true and 0 for false.
func Bool(b bool) lisp.Value {
	if b {
		return lisp.Int(1)
	}
	return lisp.Int(0)
}
