package lisp

import (
	"fmt"
	"io"
)

// Config is a function that configures a Runtime.
type Config func(rt *Runtime) error

// WithMaximumCallDepth returns a Config that will prevent a runtime from
// allowing the call stack to grow beyond n frames.  A call that would exceed
// the limit fails with a StackOverflow error.  A limit of zero disables the
// check, leaving the Go stack as the only bound on recursion.
func WithMaximumCallDepth(n int) Config {
	return func(rt *Runtime) error {
		if n < 0 {
			return fmt.Errorf("negative call depth: %d", n)
		}
		rt.Stack.MaxHeight = n
		return nil
	}
}

// WithReader returns a Config that makes runtimes use r to parse source
// text.  There is no default Reader for a runtime.
func WithReader(r Reader) Config {
	return func(rt *Runtime) error {
		rt.Reader = r
		return nil
	}
}

// WithStderr returns a Config that makes runtimes write debugging output to w
// instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) error {
		if w == nil {
			return fmt.Errorf("nil stderr")
		}
		rt.Stderr = w
		return nil
	}
}

// WithTrace returns a Config that makes runtimes write a line to stderr for
// every function call.
func WithTrace(trace bool) Config {
	return func(rt *Runtime) error {
		rt.Trace = trace
		return nil
	}
}

// WithLibrary returns a Config that calls load to register host bindings.
func WithLibrary(load func(rt *Runtime) error) Config {
	return func(rt *Runtime) error {
		return load(rt)
	}
}
