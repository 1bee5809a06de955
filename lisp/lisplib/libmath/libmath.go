// Package libmath binds arithmetic on exact rationals.
package libmath

import (
	"math/big"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/internal/libutil"
)

// LoadPackage binds the arithmetic functions in rt.
func LoadPackage(rt *lisp.Runtime) error {
	return libutil.Register(rt, builtins)
}

var (
	builtinAdd = libutil.Function("add", BuiltinAdd)
	builtinSub = libutil.Function("sub", BuiltinSub)
	builtinMul = libutil.Function("mul", BuiltinMul)
	builtinDiv = libutil.Function("div", BuiltinDiv)
)

var builtins = []*libutil.Builtin{
	builtinAdd,
	builtinSub,
	builtinMul,
	builtinDiv,
	libutil.Alias("+", builtinAdd),
	libutil.Alias("-", builtinSub),
	libutil.Alias("*", builtinMul),
	libutil.Alias("/", builtinDiv),
	libutil.Function("equ", BuiltinEqu),
	libutil.Function("lt", BuiltinLt),
	libutil.Function("gt", BuiltinGt),
	libutil.Function("floor", BuiltinFloor),
	libutil.Function("ceil", BuiltinCeil),
}

// BuiltinAdd returns the sum of its arguments, 0 when there are none.
func BuiltinAdd(args []lisp.Value) (lisp.Value, error) {
	xs, err := libutil.Rats(args)
	if err != nil {
		return nil, err
	}
	sum := new(big.Rat)
	for _, x := range xs {
		sum.Add(sum, x)
	}
	return lisp.Rat(sum), nil
}

// BuiltinSub subtracts the remaining arguments from the first.  A single
// argument is negated.
func BuiltinSub(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, -1); err != nil {
		return nil, err
	}
	xs, err := libutil.Rats(args)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 {
		return lisp.Rat(new(big.Rat).Neg(xs[0])), nil
	}
	diff := new(big.Rat).Set(xs[0])
	for _, x := range xs[1:] {
		diff.Sub(diff, x)
	}
	return lisp.Rat(diff), nil
}

// BuiltinMul returns the product of its arguments, 1 when there are none.
func BuiltinMul(args []lisp.Value) (lisp.Value, error) {
	xs, err := libutil.Rats(args)
	if err != nil {
		return nil, err
	}
	prod := big.NewRat(1, 1)
	for _, x := range xs {
		prod.Mul(prod, x)
	}
	return lisp.Rat(prod), nil
}

// BuiltinDiv divides the first argument by the remaining ones.  A single
// argument is inverted.
func BuiltinDiv(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, -1); err != nil {
		return nil, err
	}
	xs, err := libutil.Rats(args)
	if err != nil {
		return nil, err
	}
	if len(xs) == 1 {
		xs = append([]*big.Rat{big.NewRat(1, 1)}, xs...)
	}
	quo := new(big.Rat).Set(xs[0])
	for _, x := range xs[1:] {
		if x.Sign() == 0 {
			return nil, lisp.ErrorConditionf("zero-division-error", "division by zero")
		}
		quo.Quo(quo, x)
	}
	return lisp.Rat(quo), nil
}

// BuiltinEqu returns 1 if all of its arguments are equal and 0 otherwise.
// Any values may be compared.
func BuiltinEqu(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, -1); err != nil {
		return nil, err
	}
	for _, x := range args[1:] {
		if !lisp.Equal(args[0], x) {
			return libutil.Bool(false), nil
		}
	}
	return libutil.Bool(true), nil
}

// BuiltinLt returns 1 if its arguments are strictly increasing.
func BuiltinLt(args []lisp.Value) (lisp.Value, error) {
	return ordered(args, func(c int) bool { return c < 0 })
}

// BuiltinGt returns 1 if its arguments are strictly decreasing.
func BuiltinGt(args []lisp.Value) (lisp.Value, error) {
	return ordered(args, func(c int) bool { return c > 0 })
}

func ordered(args []lisp.Value, test func(c int) bool) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 2, -1); err != nil {
		return nil, err
	}
	xs, err := libutil.Rats(args)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(xs); i++ {
		if !test(xs[i-1].Cmp(xs[i])) {
			return libutil.Bool(false), nil
		}
	}
	return libutil.Bool(true), nil
}

// BuiltinFloor returns the greatest integer not greater than its argument.
func BuiltinFloor(args []lisp.Value) (lisp.Value, error) {
	return rounded(args, false)
}

// BuiltinCeil returns the least integer not less than its argument.
func BuiltinCeil(args []lisp.Value) (lisp.Value, error) {
	return rounded(args, true)
}

func rounded(args []lisp.Value, up bool) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, 1); err != nil {
		return nil, err
	}
	xs, err := libutil.Rats(args)
	if err != nil {
		return nil, err
	}
	x := xs[0]
	if x.IsInt() {
		return lisp.Rat(x), nil
	}
	// big.Int.Div rounds toward negative infinity for a positive divisor.
	q := new(big.Int).Div(x.Num(), x.Denom())
	if up {
		q.Add(q, big.NewInt(1))
	}
	return lisp.Rat(new(big.Rat).SetInt(q)), nil
}
