// Package lisplib is used to conveniently load the host library into a
// hyperlisp runtime.
package lisplib

import (
	"io"
	"os"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libio"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libjson"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libmath"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libregexp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libstring"
	"github.com/homonoid/hyperlisp/lisp/lisplib/libtime"
)

// LoadLibrary loads the host library into rt.  Console functions use the
// standard input and output of the process.
func LoadLibrary(rt *lisp.Runtime) error {
	return Load(rt, os.Stdin, os.Stdout)
}

// Load loads the host library into rt.  Console functions read from in and
// write to out.
func Load(rt *lisp.Runtime, in io.Reader, out io.Writer) error {
	err := libmath.LoadPackage(rt)
	if err != nil {
		return err
	}
	err = libio.LoadPackage(rt, in, out)
	if err != nil {
		return err
	}
	err = libstring.LoadPackage(rt)
	if err != nil {
		return err
	}
	err = libregexp.LoadPackage(rt)
	if err != nil {
		return err
	}
	err = libtime.LoadPackage(rt)
	if err != nil {
		return err
	}
	return libjson.LoadPackage(rt)
}

// Config returns a lisp.Config that loads the host library with console
// functions reading from in and writing to out.
func Config(in io.Reader, out io.Writer) lisp.Config {
	return func(rt *lisp.Runtime) error {
		return Load(rt, in, out)
	}
}
