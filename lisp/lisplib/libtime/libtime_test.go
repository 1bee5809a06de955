package libtime_test

import (
	"testing"
	"time"

	"github.com/homonoid/hyperlisp/hltest"
	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libtesting"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock(t *testing.T) {
	now := time.Date(2020, 1, 2, 3, 4, 5, 500000000, time.UTC)
	r := &hltest.Runner{
		Loader: func(rt *lisp.Runtime) error {
			return libtime.LoadPackageClock(rt, func() time.Time { return now })
		},
	}
	rt, err := r.NewRuntime(libtesting.NewTestSuite())
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-02T03:04:05.5Z"`, hltest.Result(rt, "(utc_now)"))
	assert.Equal(t, "1577934245.5", hltest.Result(rt, "(unix_now)"))
}

func TestSub(t *testing.T) {
	tests := hltest.TestSuite{
		{"sub", hltest.TestSequence{
			{`(time_sub "2020-01-01T00:01:00Z" "2020-01-01T00:00:00Z")`, "60"},
			{`(time_sub "2020-01-01T00:00:00Z" "2020-01-01T00:00:00.25Z")`, "-0.25"},
			{`(time_sub "2020-01-01T01:00:00+01:00" "2020-01-01T00:00:00Z")`, "0"},
		}},
		{"errors", hltest.TestSequence{
			{`(time_sub "yesterday" "2020-01-01T00:00:00Z")`, `Runtime error: external "time_sub" failed with time-parse-error: parsing time "yesterday" as "2006-01-02T15:04:05.999999999Z07:00": cannot parse "yesterday" as "2006" (line 1, column 2, in "test")`},
		}},
	}
	hltest.RunTestSuite(t, tests)
}
