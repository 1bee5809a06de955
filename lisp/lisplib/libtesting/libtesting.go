// Package libtesting binds functions used to write tests in hyperlisp.
package libtesting

import (
	"fmt"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/internal/libutil"
)

// LoadPackage binds the test functions in rt.  Tests defined by the program
// are added to suite.
func LoadPackage(rt *lisp.Runtime, suite *TestSuite) error {
	return libutil.Register(rt, suite.Builtins())
}

// TestSuite is an ordered set of named tests.
type TestSuite struct {
	tests map[string]*Test
	order []string
}

func NewTestSuite() *TestSuite {
	return &TestSuite{
		tests: make(map[string]*Test),
	}
}

func (s *TestSuite) Add(t *Test) error {
	if s.tests[t.Name] != nil {
		return fmt.Errorf("test with the same name already defined: %v", t.Name)
	}
	s.order = append(s.order, t.Name)
	s.tests[t.Name] = t
	return nil
}

func (s *TestSuite) Len() int {
	return len(s.order)
}

func (s *TestSuite) Test(i int) *Test {
	return s.tests[s.order[i]]
}

func (s *TestSuite) Builtins() []*libutil.Builtin {
	return []*libutil.Builtin{
		libutil.Function("test", s.BuiltinTest),
		libutil.Function("assert", BuiltinAssert),
		libutil.Function("assert_equal", BuiltinAssertEqual),
	}
}

// BuiltinTest adds a test made of a name and a function taking no
// arguments.
func (s *TestSuite) BuiltinTest(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 2, 2); err != nil {
		return nil, err
	}
	name, ok := args[0].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(0, "text", args[0])
	}
	fn, ok := args[1].(lisp.Callable)
	if !ok {
		return nil, libutil.TypeError(1, "function", args[1])
	}
	err := s.Add(&Test{Name: string(name), Fn: fn})
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// Test is a named hyperlisp test function.
type Test struct {
	Name string
	Fn   lisp.Callable
}

// Run calls the test function in rt.
func (t *Test) Run(rt *lisp.Runtime) error {
	_, err := t.Fn.Call(rt, 0, nil)
	return err
}

// BuiltinAssert fails unless its first argument is true.  An optional second
// argument is used as the failure message.
func BuiltinAssert(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, 2); err != nil {
		return nil, err
	}
	if libutil.Truthy(args[0]) {
		return nil, nil
	}
	if len(args) == 2 {
		return nil, lisp.ErrorConditionf("assertion-error", "%s", lisp.Display(args[1]))
	}
	return nil, lisp.ErrorConditionf("assertion-error", "assertion failed: %s", lisp.Format(args[0]))
}

// BuiltinAssertEqual fails unless its two arguments are equal.
func BuiltinAssertEqual(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 2, 2); err != nil {
		return nil, err
	}
	if lisp.Equal(args[0], args[1]) {
		return nil, nil
	}
	return nil, lisp.ErrorConditionf("assertion-error", "expected %s but got %s", formatArg(args[0]), formatArg(args[1]))
}

func formatArg(v lisp.Value) string {
	if v == nil {
		return "()"
	}
	return lisp.Format(v)
}
