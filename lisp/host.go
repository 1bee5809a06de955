package lisp

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// DefaultMaxDenominator bounds the denominator of rationals made from host
// floating point numbers.
const DefaultMaxDenominator = 1000000

// RegisterFunc binds fn to name in the global scope.  The name becomes
// immutable: hyperlisp code cannot rebind it.
func (rt *Runtime) RegisterFunc(name string, fn HostFunc) error {
	if fn == nil {
		return fmt.Errorf("%s: nil function", name)
	}
	return rt.putExternal(name, &HostFunction{Name: name, Fn: fn})
}

// RegisterGoFunc binds an arbitrary Go function to name.  Arguments are
// converted from hyperlisp values to the function's parameter types and the
// results are converted back with ValueOf.  A function may return nothing,
// one value, an error, or a value and an error.
func (rt *Runtime) RegisterGoFunc(name string, fn interface{}) error {
	hfn, err := GoFunc(fn)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return rt.RegisterFunc(name, hfn)
}

// RegisterConst binds a constant to name.  The value must be convertible by
// ValueOf and must not be a function.  Use RegisterFunc to bind functions.
func (rt *Runtime) RegisterConst(name string, v interface{}) error {
	if _, ok := v.(Callable); ok {
		return fmt.Errorf("%s: use RegisterFunc to bind a function", name)
	}
	if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
		return fmt.Errorf("%s: use RegisterFunc to bind a function", name)
	}
	val, err := ValueOf(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if val == nil {
		return fmt.Errorf("%s: constant has no value", name)
	}
	return rt.putExternal(name, val)
}

func (rt *Runtime) putExternal(name string, v Value) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name == BindSymbol || name == FuncSymbol {
		return fmt.Errorf("%s: name of a special form", name)
	}
	if rt.external[name] {
		return fmt.Errorf("%s: already bound externally", name)
	}
	rt.external[name] = true
	rt.Globals.Put(name, v)
	return nil
}

var (
	valueType    = reflect.TypeOf((*Value)(nil)).Elem()
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	ratType      = reflect.TypeOf((*big.Rat)(nil))
	bigIntType   = reflect.TypeOf((*big.Int)(nil))
	rationalType = reflect.TypeOf((*Rational)(nil))
)

// ValueOf converts a Go value into a hyperlisp Value.  Integers, big numbers
// and booleans (as 0 or 1) become rationals, floats become rationals with a
// denominator no larger than DefaultMaxDenominator, strings become text and
// slices or arrays become sequences.  Values are returned as they are.  A nil
// interface converts to a nil Value.
func ValueOf(x interface{}) (Value, error) {
	switch x := x.(type) {
	case nil:
		return nil, nil
	case Value:
		return x, nil
	case *big.Rat:
		return Rat(x), nil
	case *big.Int:
		return Rat(new(big.Rat).SetInt(x)), nil
	case string:
		return Text(x), nil
	case bool:
		if x {
			return Int(1), nil
		}
		return Int(0), nil
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Rat(new(big.Rat).SetInt(new(big.Int).SetUint64(rv.Uint()))), nil
	case reflect.Float32, reflect.Float64:
		r, err := FloatRational(rv.Float())
		if err != nil {
			return nil, err
		}
		return r, nil
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Slice, reflect.Array:
		seq := make(Sequence, rv.Len())
		for i := range seq {
			v, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			seq[i] = v
		}
		return seq, nil
	}
	return nil, fmt.Errorf("hyperlisp cannot understand values of type %T", x)
}

// FloatRational converts f to a Rational whose denominator is at most
// DefaultMaxDenominator.  NaN and infinities cannot be converted.
func FloatRational(f float64) (*Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("not a finite number: %v", f)
	}
	x := new(big.Rat).SetFloat64(f)
	return Rat(LimitDenominator(x, big.NewInt(DefaultMaxDenominator))), nil
}

// LimitDenominator returns the closest fraction to x with a denominator no
// larger than max, found by walking the continued fraction expansion of x.
func LimitDenominator(x *big.Rat, max *big.Int) *big.Rat {
	if x.Denom().Cmp(max) <= 0 {
		return new(big.Rat).Set(x)
	}
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(x.Num())
	d := new(big.Int).Set(x.Denom())
	a := new(big.Int)
	q2 := new(big.Int)
	for {
		a.Div(n, d) // d > 0, so this is floor division
		q2.Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(max) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, new(big.Int).Set(q2)
		r := new(big.Int).Mul(a, d)
		n, d = d, r.Sub(n, r)
	}
	k := new(big.Int).Sub(max, q0)
	k.Div(k, q1)
	bound1 := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	bound2 := new(big.Rat).SetFrac(p1, q1)
	dist1 := new(big.Rat).Sub(bound1, x)
	dist2 := new(big.Rat).Sub(bound2, x)
	if dist2.Abs(dist2).Cmp(dist1.Abs(dist1)) <= 0 {
		return bound2
	}
	return bound1
}

// GoFunc adapts a Go function into a HostFunc.  See RegisterGoFunc.
func GoFunc(fn interface{}) (HostFunc, error) {
	if hfn, ok := fn.(HostFunc); ok {
		return hfn, nil
	}
	if hfn, ok := fn.(func([]Value) (Value, error)); ok {
		return hfn, nil
	}
	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("not a function: %T", fn)
	}
	if rv.IsNil() {
		return nil, fmt.Errorf("nil function")
	}
	typ := rv.Type()
	switch typ.NumOut() {
	case 0, 1:
	case 2:
		if typ.Out(1) != errorType {
			return nil, fmt.Errorf("second result must be an error: %v", typ)
		}
	default:
		return nil, fmt.Errorf("too many results: %v", typ)
	}
	return func(args []Value) (Value, error) {
		in, err := goArgs(typ, args)
		if err != nil {
			return nil, err
		}
		out := rv.Call(in)
		return goResults(typ, out)
	}, nil
}

func goArgs(typ reflect.Type, args []Value) ([]reflect.Value, error) {
	n := typ.NumIn()
	if typ.IsVariadic() {
		if len(args) < n-1 {
			return nil, ErrorConditionf("arity-error", "%d argument(s) found where at least %d is expected", len(args), n-1)
		}
	} else if len(args) != n {
		return nil, ErrorConditionf("arity-error", "%d argument(s) found where %d is expected", len(args), n)
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var t reflect.Type
		if typ.IsVariadic() && i >= n-1 {
			t = typ.In(n - 1).Elem()
		} else {
			t = typ.In(i)
		}
		v, err := GoValue(arg, t)
		if err != nil {
			return nil, ErrorConditionf("type-error", "argument %d: %v", i+1, err)
		}
		in[i] = v
	}
	return in, nil
}

func goResults(typ reflect.Type, out []reflect.Value) (Value, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if typ.Out(0) == errorType {
			if out[0].IsNil() {
				return nil, nil
			}
			return nil, out[0].Interface().(error)
		}
		return ValueOf(out[0].Interface())
	default:
		if !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return ValueOf(out[0].Interface())
	}
}

// GoValue converts v into a Go value of type t.
func GoValue(v Value, t reflect.Type) (reflect.Value, error) {
	if t == valueType {
		if v == nil {
			return reflect.Zero(t), nil
		}
		return reflect.ValueOf(v), nil
	}
	if v != nil && reflect.TypeOf(v).AssignableTo(t) {
		return reflect.ValueOf(v), nil
	}
	switch v := v.(type) {
	case *Rational:
		return rationalGoValue(v, t)
	case Text:
		if t.Kind() == reflect.String {
			return reflect.ValueOf(string(v)).Convert(t), nil
		}
	case Sequence:
		if t.Kind() == reflect.Slice {
			out := reflect.MakeSlice(t, len(v), len(v))
			for i := range v {
				x, err := GoValue(v[i], t.Elem())
				if err != nil {
					return reflect.Value{}, fmt.Errorf("index %d: %w", i, err)
				}
				out.Index(i).Set(x)
			}
			return out, nil
		}
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %v", TypeName(v), t)
}

func rationalGoValue(r *Rational, t reflect.Type) (reflect.Value, error) {
	switch t {
	case ratType:
		return reflect.ValueOf(r.Rat()), nil
	case bigIntType:
		if !r.IsInt() {
			return reflect.Value{}, fmt.Errorf("not an integer: %v", r)
		}
		return reflect.ValueOf(new(big.Int).Set(r.x.Num())), nil
	case rationalType:
		return reflect.ValueOf(r), nil
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !r.IsInt() || !r.x.Num().IsInt64() {
			return reflect.Value{}, fmt.Errorf("not a %v: %v", t, r)
		}
		out := reflect.New(t).Elem()
		x := r.x.Num().Int64()
		if out.OverflowInt(x) {
			return reflect.Value{}, fmt.Errorf("overflows %v: %v", t, r)
		}
		out.SetInt(x)
		return out, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if !r.IsInt() || r.Sign() < 0 || !r.x.Num().IsUint64() {
			return reflect.Value{}, fmt.Errorf("not a %v: %v", t, r)
		}
		out := reflect.New(t).Elem()
		x := r.x.Num().Uint64()
		if out.OverflowUint(x) {
			return reflect.Value{}, fmt.Errorf("overflows %v: %v", t, r)
		}
		out.SetUint(x)
		return out, nil
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(r.Float64()).Convert(t), nil
	case reflect.Bool:
		return reflect.ValueOf(r.Sign() != 0).Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use rational as %v", t)
}
