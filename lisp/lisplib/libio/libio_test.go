package libio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libio"
	"github.com/homonoid/hyperlisp/parser/rdparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRuntime(t *testing.T, input string) (*lisp.Runtime, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	rt, err := lisp.NewRuntime(
		lisp.WithReader(rdparser.NewReader()),
		lisp.WithLibrary(func(rt *lisp.Runtime) error {
			return libio.LoadPackage(rt, strings.NewReader(input), &out)
		}),
	)
	require.NoError(t, err)
	return rt, &out
}

func TestPrint(t *testing.T) {
	rt, out := newRuntime(t, "")
	v, err := rt.Run("test", `(print "hello" 1 0.5 [1 "x"])`)
	require.NoError(t, err)
	assert.Nil(t, v)
	_, err = rt.Run("test", `(print)`)
	require.NoError(t, err)
	assert.Equal(t, "hello 1 0.5 [1 \"x\"]\n\n", out.String())
}

func TestInput(t *testing.T) {
	rt, out := newRuntime(t, "first line\r\nsecond")
	v, err := rt.Run("test", `(input "name? ")`)
	require.NoError(t, err)
	assert.Equal(t, lisp.Text("first line"), v)
	assert.Equal(t, "name? ", out.String())

	v, err = rt.Run("test", `(input)`)
	require.NoError(t, err)
	assert.Equal(t, lisp.Text("second"), v)

	_, err = rt.Run("test", `(input)`)
	require.Error(t, err)
	d, ok := lisp.GetDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, lisp.HostFailure, d.Kind)
	assert.Equal(t, "input", d.Name)
	assert.Equal(t, "eof-error", lisp.FailureKind(d.Cause))

	_, err = rt.Run("test", `(input 1)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 1 is not a text")
}

func TestFiles(t *testing.T) {
	rt, _ := newRuntime(t, "")
	path := filepath.Join(t.TempDir(), "data.txt")
	rt.Globals.Put("path", lisp.Text(path))

	v, err := rt.Run("test", `(write_file path "one\ntwo")`)
	require.NoError(t, err)
	assert.Nil(t, v)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", string(b))

	v, err = rt.Run("test", `(read_file path)`)
	require.NoError(t, err)
	assert.Equal(t, lisp.Text("one\ntwo"), v)

	rt.Globals.Put("path", lisp.Text(filepath.Join(t.TempDir(), "missing")))
	_, err = rt.Run("test", `(read_file path)`)
	require.Error(t, err)
	d, ok := lisp.GetDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, lisp.HostFailure, d.Kind)
	assert.True(t, os.IsNotExist(d.Cause))
}
