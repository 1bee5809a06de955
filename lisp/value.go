package lisp

import (
	"math/big"
)

// ValueType is the type of a Value
type ValueType uint

// Possible ValueType values
const (
	LInvalid ValueType = iota
	LRational
	LText
	LSequence
	LFunc
	LExternal
)

var valueTypeStrings = []string{
	LInvalid:  "INVALID",
	LRational: "rational",
	LText:     "text",
	LSequence: "sequence",
	LFunc:     "function",
	LExternal: "external",
}

func (t ValueType) String() string {
	if int(t) >= len(valueTypeStrings) {
		return valueTypeStrings[LInvalid]
	}
	return valueTypeStrings[t]
}

// Value is a hyperlisp runtime value.  The absence of a value, produced by
// bind and by host functions returning nothing, is a nil Value.
type Value interface {
	Type() ValueType
}

// TypeName returns a human readable name for the type of v.
func TypeName(v Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Type().String()
}

// Rational is an exact fraction.  A Rational is always in lowest terms and is
// never modified after it is constructed.
type Rational struct {
	x big.Rat
}

// Rat returns a Rational equal to x.  x is copied.
func Rat(x *big.Rat) *Rational {
	r := &Rational{}
	r.x.Set(x)
	return r
}

// Int returns a Rational equal to the integer x.
func Int(x int64) *Rational {
	r := &Rational{}
	r.x.SetInt64(x)
	return r
}

// Frac returns the Rational a/b.  Frac panics if b is zero.
func Frac(a, b int64) *Rational {
	r := &Rational{}
	r.x.SetFrac64(a, b)
	return r
}

// Type implements Value.
func (r *Rational) Type() ValueType {
	return LRational
}

// Rat returns a copy of the underlying fraction.
func (r *Rational) Rat() *big.Rat {
	return new(big.Rat).Set(&r.x)
}

// IsInt returns true if r is integral.
func (r *Rational) IsInt() bool {
	return r.x.IsInt()
}

// Sign returns -1, 0 or 1 depending on the sign of r.
func (r *Rational) Sign() int {
	return r.x.Sign()
}

// Float64 returns the nearest float64 to r.
func (r *Rational) Float64() float64 {
	f, _ := r.x.Float64()
	return f
}

// Cmp compares r and other like big.Rat.Cmp.
func (r *Rational) Cmp(other *Rational) int {
	return r.x.Cmp(&other.x)
}

func (r *Rational) String() string {
	return formatRational(r)
}

// ParseRational parses a decimal literal like "-12" or "0.25" into an exact
// Rational.
func ParseRational(text string) (*Rational, bool) {
	r := &Rational{}
	_, ok := r.x.SetString(text)
	if !ok {
		return nil, false
	}
	return r, true
}

// Text is a string value.
type Text string

// Type implements Value.
func (s Text) Type() ValueType {
	return LText
}

// Sequence is an ordered list of values.
type Sequence []Value

// Type implements Value.
func (s Sequence) Type() ValueType {
	return LSequence
}

// Last returns the last element of s or nil if s is empty.
func (s Sequence) Last() Value {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Equal returns true if a and b are structurally equal.  Callables are equal
// only when they are the same object.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Rational:
		b, ok := b.(*Rational)
		return ok && a.Cmp(b) == 0
	case Text:
		b, ok := b.(Text)
		return ok && a == b
	case Sequence:
		b, ok := b.(Sequence)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case *Closure:
		b, ok := b.(*Closure)
		return ok && a == b
	case *HostFunction:
		b, ok := b.(*HostFunction)
		return ok && a == b
	default:
		return false
	}
}
