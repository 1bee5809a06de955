package libtesting_test

import (
	"testing"

	"github.com/homonoid/hyperlisp/hltest"
	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libtesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackage(t *testing.T) {
	r := &hltest.Runner{}
	r.RunTestFile(t, "testdata/testing_test.hl")
}

func TestSuite(t *testing.T) {
	suite := libtesting.NewTestSuite()
	r := &hltest.Runner{}
	rt, err := r.NewRuntime(suite)
	require.NoError(t, err)

	_, err = rt.Run("test", `
		(test "passes" (func () (assert_equal 2 (add 1 1))))
		(test "fails" (func () (assert_equal 3 (add 1 1))))
		(test "message" (func () (assert 0 "zero is false")))
		(test "arity" (func x x))`)
	require.NoError(t, err)
	require.Equal(t, 4, suite.Len())
	assert.Equal(t, "passes", suite.Test(0).Name)

	assert.NoError(t, suite.Test(0).Run(rt))

	err = suite.Test(1).Run(rt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `external "assert_equal" failed with assertion-error: expected 3 but got 2`)

	err = suite.Test(2).Run(rt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assertion-error: zero is false")

	err = suite.Test(3).Run(rt)
	require.Error(t, err)
	assert.Equal(t, "0 argument(s) found where 1 is expected", err.Error())

	_, err = rt.Run("test", `(test "passes" (func () 1))`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test with the same name already defined: passes")
}

func TestAssertFalse(t *testing.T) {
	for _, v := range []lisp.Value{nil, lisp.Int(0), lisp.Text(""), lisp.Sequence{}} {
		_, err := libtesting.BuiltinAssert([]lisp.Value{v})
		assert.Error(t, err, "value: %#v", v)
		assert.Equal(t, "assertion-error", lisp.FailureKind(err))
	}
	_, err := libtesting.BuiltinAssertEqual([]lisp.Value{nil, lisp.Int(0)})
	assert.EqualError(t, err, "expected () but got 0")
}
