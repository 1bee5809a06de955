// Package hltest runs hyperlisp code in Go tests.
package hltest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libtesting"
	"github.com/homonoid/hyperlisp/parser/rdparser"
)

// Runner is a test runner.
type Runner struct {
	// Loader is the library loader used to initialize the test runtime.  When
	// Loader is nil the host library is loaded with empty input and output
	// discarded.
	Loader func(*lisp.Runtime) error
}

// NewRuntime returns a runtime with the test library and the runner's host
// library loaded.  Tests defined by programs run in it are added to suite.
func (r *Runner) NewRuntime(suite *libtesting.TestSuite) (*lisp.Runtime, error) {
	loader := r.Loader
	if loader == nil {
		loader = lisplib.Config(strings.NewReader(""), io.Discard)
	}
	return lisp.NewRuntime(
		lisp.WithReader(rdparser.NewReader()),
		lisp.WithLibrary(loader),
		lisp.WithLibrary(func(rt *lisp.Runtime) error {
			return libtesting.LoadPackage(rt, suite)
		}),
	)
}

func (r *Runner) load(t *testing.T, path string, source []byte) (*lisp.Runtime, *libtesting.TestSuite, bool) {
	suite := libtesting.NewTestSuite()
	rt, err := r.NewRuntime(suite)
	if err != nil {
		t.Errorf("Failed to initialize runtime: %v", err)
		return nil, nil, false
	}
	_, err = rt.Run(filepath.Base(path), string(source))
	if err != nil {
		reportError(t, err)
		return nil, nil, false
	}
	return rt, suite, true
}

// RunTestFile loads the hyperlisp file at path and runs each test it defines
// as a subtest.  Every test runs in a fresh runtime.
func (r *Runner) RunTestFile(t *testing.T, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Unable to read test file: %v", err)
		return
	}

	var names []string
	ok := t.Run("$load", func(t *testing.T) {
		_, suite, ok := r.load(t, path, source)
		if !ok {
			return
		}
		names = make([]string, suite.Len())
		for i := range names {
			names[i] = suite.Test(i).Name
		}
	})
	if !ok {
		return
	}

	for i := range names {
		// Every test runs even if an earlier one fails.
		t.Run(names[i], func(t *testing.T) {
			rt, suite, ok := r.load(t, path, source)
			if !ok {
				return
			}
			test := suite.Test(i)
			err := test.Run(rt)
			if err != nil {
				t.Errorf("%s:", test.Name)
				reportError(t, err)
			}
		})
	}
}

func reportError(t *testing.T, err error) {
	t.Helper()
	t.Error(err.Error())
	if d, ok := lisp.GetDiagnostic(err); ok && d.Stack != nil && d.Stack.Height() > 0 {
		var buf bytes.Buffer
		d.Stack.DebugPrint(&buf)
		t.Error(buf.String())
	}
}

// TestSequence is a sequence of hyperlisp programs which are run
// sequentially by one lisp.Runtime.
type TestSequence []struct {
	Expr   string // a hyperlisp program
	Result string // the formatted result, or the error message
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated runtimes with the
// host library loaded.
func RunTestSuite(t *testing.T, tests TestSuite) {
	r := &Runner{}
	for i, test := range tests {
		rt, err := r.NewRuntime(libtesting.NewTestSuite())
		if err != nil {
			t.Errorf("test %d %q: %v", i, test.Name, err)
			continue
		}
		for j, expr := range test.TestSequence {
			result := Result(rt, expr.Expr)
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

// Result runs text in rt and returns the formatted value, or the error
// message if running failed.
func Result(rt *lisp.Runtime, text string) string {
	v, err := rt.Run("test", text)
	if err != nil {
		return err.Error()
	}
	return lisp.Format(v)
}
