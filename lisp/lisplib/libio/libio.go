// Package libio binds console and file input and output.
package libio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/internal/libutil"
)

// Console is the terminal that print writes to and input reads from.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading lines from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// LoadPackage binds the input and output functions in rt.
func LoadPackage(rt *lisp.Runtime, in io.Reader, out io.Writer) error {
	c := NewConsole(in, out)
	return libutil.Register(rt, c.Builtins())
}

// Builtins returns the functions bound by LoadPackage.
func (c *Console) Builtins() []*libutil.Builtin {
	return []*libutil.Builtin{
		libutil.Function("print", c.BuiltinPrint),
		libutil.Function("input", c.BuiltinInput),
		libutil.Function("read_file", BuiltinReadFile),
		libutil.Function("write_file", BuiltinWriteFile),
	}
}

// BuiltinPrint writes its arguments separated by spaces and followed by a
// newline.  Text is written without quotes.  Print returns nothing.
func (c *Console) BuiltinPrint(args []lisp.Value) (lisp.Value, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = lisp.Display(arg)
	}
	_, err := io.WriteString(c.out, strings.Join(parts, " ")+"\n")
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// BuiltinInput writes an optional prompt and returns the next line of input
// without its line terminator.
func (c *Console) BuiltinInput(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 0, 1); err != nil {
		return nil, err
	}
	if len(args) == 1 {
		prompt, ok := args[0].(lisp.Text)
		if !ok {
			return nil, libutil.TypeError(0, "text", args[0])
		}
		_, err := io.WriteString(c.out, string(prompt))
		if err != nil {
			return nil, err
		}
	}
	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return nil, lisp.ErrorConditionf("eof-error", "end of input")
		}
	} else if err != nil {
		return nil, err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return lisp.Text(line), nil
}

// BuiltinReadFile returns the contents of the file at a path as text.
func BuiltinReadFile(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, 1); err != nil {
		return nil, err
	}
	path, ok := args[0].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(0, "text", args[0])
	}
	b, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}
	return lisp.Text(b), nil
}

// BuiltinWriteFile writes text to the file at a path, replacing its
// contents.  Write_file returns nothing.
func BuiltinWriteFile(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 2, 2); err != nil {
		return nil, err
	}
	path, ok := args[0].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(0, "text", args[0])
	}
	data, ok := args[1].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(1, "text", args[1])
	}
	err := os.WriteFile(string(path), []byte(data), 0644)
	if err != nil {
		return nil, err
	}
	return nil, nil
}
