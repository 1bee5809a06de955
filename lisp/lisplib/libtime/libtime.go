// Package libtime binds functions on RFC 3339 timestamps.  Times are text and
// durations are rational numbers of seconds.
package libtime

import (
	"math/big"
	"time"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/internal/libutil"
)

// Clock returns the current time.
type Clock func() time.Time

// LoadPackage binds the time functions in rt using the system clock.
func LoadPackage(rt *lisp.Runtime) error {
	return LoadPackageClock(rt, time.Now)
}

// LoadPackageClock binds the time functions in rt using now as the clock.
func LoadPackageClock(rt *lisp.Runtime, now Clock) error {
	return libutil.Register(rt, []*libutil.Builtin{
		libutil.Function("utc_now", now.BuiltinUTCNow),
		libutil.Function("unix_now", now.BuiltinUnixNow),
		libutil.Function("time_sub", BuiltinSub),
	})
}

// BuiltinUTCNow returns the current time formatted as an RFC 3339 timestamp
// with nanoseconds.
func (now Clock) BuiltinUTCNow(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 0, 0); err != nil {
		return nil, err
	}
	return lisp.Text(now().UTC().Format(time.RFC3339Nano)), nil
}

// BuiltinUnixNow returns the number of seconds since the Unix epoch.
func (now Clock) BuiltinUnixNow(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 0, 0); err != nil {
		return nil, err
	}
	return seconds(now().UnixNano()), nil
}

// BuiltinSub returns the number of seconds from the second timestamp to the
// first.
func BuiltinSub(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 2, 2); err != nil {
		return nil, err
	}
	end, err := parseTime(args, 0)
	if err != nil {
		return nil, err
	}
	start, err := parseTime(args, 1)
	if err != nil {
		return nil, err
	}
	return seconds(int64(end.Sub(start))), nil
}

func parseTime(args []lisp.Value, i int) (time.Time, error) {
	stamp, ok := args[i].(lisp.Text)
	if !ok {
		return time.Time{}, libutil.TypeError(i, "text", args[i])
	}
	t, err := time.Parse(time.RFC3339Nano, string(stamp))
	if err != nil {
		return time.Time{}, &lisp.ConditionError{Condition: "time-parse-error", Err: err}
	}
	return t, nil
}

func seconds(ns int64) lisp.Value {
	return lisp.Rat(big.NewRat(ns, int64(time.Second)))
}
