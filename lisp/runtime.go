package lisp

import (
	"errors"
	"io"
	"os"

	"github.com/homonoid/hyperlisp/parser/ast"
)

// Reader parses source text into a Root node.  Errors returned by a Reader
// should be *Diagnostic values.
type Reader interface {
	Read(src *ast.Source) (*ast.Node, error)
}

// ErrNoReader is returned by Read and Run when a runtime was configured
// without a Reader.  It is the only error from them that is not a
// *Diagnostic.
var ErrNoReader = errors.New("runtime has no reader")

// Runtime holds the state shared by every program it runs: the global scope,
// the set of names bound by the host, and the call stack.  A Runtime is not
// safe for concurrent use.
type Runtime struct {
	// Globals holds host bindings and the top-level bindings of programs.
	// Top-level bindings persist between calls to Run.
	Globals *Scope
	Reader  Reader
	Stack   *CallStack
	Stderr  io.Writer
	// Trace makes the runtime write each function call to Stderr.
	Trace bool

	external map[string]bool
}

// NewRuntime initializes and returns a new Runtime with the provided
// configuration.  There is no default Reader, so one must be configured with
// WithReader before Run can be used.
func NewRuntime(config ...Config) (*Runtime, error) {
	rt := &Runtime{
		Globals:  NewScope(0),
		Stack:    &CallStack{MaxHeight: DefaultMaxHeight},
		Stderr:   os.Stderr,
		external: make(map[string]bool),
	}
	for _, fn := range config {
		err := fn(rt)
		if err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// IsExternal returns true if name was bound by the host.  External names
// cannot be rebound by hyperlisp code.
func (rt *Runtime) IsExternal(name string) bool {
	return rt.external[name]
}

// Read parses text using the runtime's Reader.  Read returns ErrNoReader if
// the runtime has no Reader.
func (rt *Runtime) Read(name string, text string) (*ast.Source, *ast.Node, error) {
	if rt.Reader == nil {
		return nil, nil, ErrNoReader
	}
	src := ast.NewSource(name, text)
	root, err := rt.Reader.Read(src)
	if err != nil {
		return src, nil, err
	}
	return src, root, nil
}

// Run reads and executes the program text.  The name is used to identify the
// source in diagnostics.  Run returns the value of the last top-level
// expression, or nil when the program is empty.  Errors in the program are
// reported as a *Diagnostic.  A runtime without a Reader fails with
// ErrNoReader.
func (rt *Runtime) Run(name string, text string) (Value, error) {
	src, root, err := rt.Read(name, text)
	if err != nil {
		return nil, err
	}
	return rt.Execute(src, root)
}

// Execute evaluates root, a node read from src, in the global scope.
// Execute returns the value of the last child of root, or nil when root is
// empty.
func (rt *Runtime) Execute(src *ast.Source, root *ast.Node) (Value, error) {
	ev := &evaluator{rt: rt, src: src}
	seq, err := ev.evalSequence(root.Children, rt.Globals)
	if err != nil {
		return nil, err
	}
	return seq.Last(), nil
}
