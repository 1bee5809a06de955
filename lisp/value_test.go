package lisp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRational(t *testing.T) {
	tests := []struct {
		text string
		num  int64
		den  int64
	}{
		{"3", 3, 1},
		{"0", 0, 1},
		{"-12", -12, 1},
		{"1.5", 3, 2},
		{"0.1", 1, 10},
		{"-0.125", -1, 8},
		{"2.50", 5, 2},
	}
	for _, test := range tests {
		r, ok := ParseRational(test.text)
		require.True(t, ok, test.text)
		assert.Equal(t, 0, r.Rat().Cmp(big.NewRat(test.num, test.den)), test.text)
	}

	// literals with many digits are kept exactly
	r, ok := ParseRational("0.1234567890123456789")
	require.True(t, ok)
	assert.Equal(t, "1234567890123456789/10000000000000000000", r.Rat().String())

	_, ok = ParseRational("x")
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v      Value
		result string
	}{
		{nil, ""},
		{Int(3), "3"},
		{Int(-3), "-3"},
		{Frac(3, 2), "1.5"},
		{Frac(-1, 4), "-0.25"},
		{Frac(1, 3), "0.3333333333333333"},
		{Text("plain"), `"plain"`},
		{Text("a\"b\\c\n"), `"a\"b\\c\n"`},
		{Sequence{}, "[]"},
		{Sequence{Int(1), Text("a"), Sequence{nil}}, `[1 "a" [()]]`},
		{&Closure{Params: []string{"a", "b"}}, "(func (a b) ...)"},
		{&HostFunction{Name: "print"}, `<external "print">`},
	}
	for _, test := range tests {
		assert.Equal(t, test.result, Format(test.v))
	}
	assert.Equal(t, "plain", Display(Text("plain")))
	assert.Equal(t, "[1]", Display(Sequence{Int(1)}))
}

func TestEqual(t *testing.T) {
	f := &HostFunction{Name: "f"}
	c := &Closure{}
	assert.True(t, Equal(nil, nil))
	assert.True(t, Equal(Int(2), Frac(4, 2)))
	assert.True(t, Equal(Sequence{Text("a"), nil}, Sequence{Text("a"), nil}))
	assert.True(t, Equal(f, f))
	assert.True(t, Equal(c, c))
	assert.False(t, Equal(nil, Int(0)))
	assert.False(t, Equal(Text("1"), Int(1)))
	assert.False(t, Equal(Sequence{Int(1)}, Sequence{Int(1), Int(2)}))
	assert.False(t, Equal(f, &HostFunction{Name: "f"}))
	assert.False(t, Equal(c, &Closure{}))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "nothing", TypeName(nil))
	assert.Equal(t, "rational", TypeName(Int(1)))
	assert.Equal(t, "text", TypeName(Text("")))
	assert.Equal(t, "sequence", TypeName(Sequence{}))
	assert.Equal(t, "function", TypeName(&Closure{}))
	assert.Equal(t, "external", TypeName(&HostFunction{}))
}
