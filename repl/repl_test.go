package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib"
	"github.com/homonoid/hyperlisp/parser/rdparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	rt, err := lisp.NewRuntime(
		lisp.WithReader(rdparser.NewReader()),
		lisp.WithLibrary(lisplib.Config(strings.NewReader(""), &out)),
	)
	require.NoError(t, err)
	return NewSession(rt, &out, &errOut), &out, &errOut
}

func TestSession(t *testing.T) {
	s, out, errOut := newSession(t)
	assert.Equal(t, ">> ", s.Prompt())

	assert.True(t, s.Feed("(bind x 5)"))
	assert.True(t, s.Feed("x"))
	assert.True(t, s.Feed(""))
	assert.True(t, s.Feed(`(print "hi")`))
	assert.Equal(t, "5\nhi\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestSessionContinuation(t *testing.T) {
	s, out, _ := newSession(t)
	assert.False(t, s.Feed("(bind add_x (func (a)"))
	assert.Equal(t, ".. ", s.Prompt())
	assert.False(t, s.Feed("  (add a 1)"))
	assert.False(t, s.Feed(")"))
	assert.True(t, s.Feed(")"))
	assert.Equal(t, ">> ", s.Prompt())
	assert.True(t, s.Feed("(add_x 2)"))
	assert.Equal(t, "3\n", out.String())

	assert.False(t, s.Feed("[1"))
	s.Reset()
	assert.Equal(t, ">> ", s.Prompt())
	assert.True(t, s.Feed("7"))
	assert.Equal(t, "3\n7\n", out.String())
}

func TestSessionErrors(t *testing.T) {
	s, out, errOut := newSession(t)
	s.Trace = true
	assert.True(t, s.Feed("(bind f (func x (div x 0)))"))
	assert.True(t, s.Feed("(f 1)"))
	assert.Equal(t, `=== Sorry! ===
Runtime error: external "div" failed with zero-division-error: division by zero (line 1, column 18, in "<stdin>")
Stack Trace [2 frames -- entrypoint last]:
  height 1: div (<stdin>:1:18)
  height 0: f (<stdin>:1:2)
`, errOut.String())

	errOut.Reset()
	assert.True(t, s.Feed(")"))
	assert.Equal(t, "=== Sorry! ===\nSyntax error: invalid syntax near \")\" (line 1, column 1, in \"<stdin>\")\n", errOut.String())

	// the session goes on after errors
	assert.True(t, s.Feed("(f)"))
	assert.True(t, s.Feed("[1 2]"))
	assert.Equal(t, "[1 2]\n", out.String())
}

func TestSessionLexicalErrors(t *testing.T) {
	s, out, errOut := newSession(t)
	assert.True(t, s.Feed(`(print "abc`))
	assert.Equal(t, "=== Sorry! ===\nLexical error near \"\"\" (line 1, column 8, in \"<stdin>\")\n", errOut.String())
	assert.Equal(t, ">> ", s.Prompt())

	errOut.Reset()
	assert.False(t, s.Feed("(foo"))
	assert.True(t, s.Feed("  #"))
	assert.Equal(t, "=== Sorry! ===\nLexical error near \"#\" (line 2, column 3, in \"<stdin>\")\n", errOut.String())
	assert.Equal(t, ">> ", s.Prompt())

	assert.True(t, s.Feed("1"))
	assert.Equal(t, "1\n", out.String())
}
