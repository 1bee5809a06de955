package lisp

import (
	"fmt"
	"strings"

	"github.com/homonoid/hyperlisp/parser/ast"
)

// Callable is a Value that can be applied to arguments.  Closure and
// HostFunction are the only implementations.
//
// Call returns a *CallError when the call fails outside of hyperlisp code
// (wrong number of arguments, failing host function).  Errors raised while
// evaluating a closure body are returned as they are.
type Callable interface {
	Value
	Call(rt *Runtime, pos int, args []Value) (Value, error)
}

var _ Callable = (*Closure)(nil)
var _ Callable = (*HostFunction)(nil)

// Closure is a user-defined function.  Scope is the scope the function was
// defined in, shared rather than copied, so bindings made in it after the
// function was created are visible to the function body.
type Closure struct {
	Params []string
	Body   []*ast.Node
	Scope  *Scope
	Source *ast.Source // source text that Body indexes into
	Pos    int
}

// Type implements Value.
func (c *Closure) Type() ValueType {
	return LFunc
}

// Arity returns the number of parameters c takes.
func (c *Closure) Arity() int {
	return len(c.Params)
}

// Call implements Callable.  The body is evaluated in a fresh scope made from
// the captured scope and the parameter bindings.  The value of the last body
// expression is returned.
func (c *Closure) Call(rt *Runtime, pos int, args []Value) (Value, error) {
	if len(args) != c.Arity() {
		return nil, &CallError{
			Kind:     ArityMismatch,
			Pos:      pos,
			Expected: c.Arity(),
			Found:    len(args),
		}
	}
	scope, err := c.Scope.Extend(c.Params, args)
	if err != nil {
		return nil, err
	}
	ev := &evaluator{rt: rt, src: c.Source}
	var v Value
	for _, expr := range c.Body {
		v, err = ev.eval(expr, scope)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (c *Closure) String() string {
	return fmt.Sprintf("(func (%s) ...)", strings.Join(c.Params, " "))
}

// HostFunc is a function supplied by the embedding program.  It may return a
// nil Value to produce no value.
type HostFunc func(args []Value) (Value, error)

// HostFunction is a host function bound to a name in the global scope.
type HostFunction struct {
	Name string
	Fn   HostFunc
}

// Type implements Value.
func (h *HostFunction) Type() ValueType {
	return LExternal
}

// Call implements Callable.  Any error returned by h.Fn, or panic raised by
// it, is reported as a HostFailure.
func (h *HostFunction) Call(rt *Runtime, pos int, args []Value) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			v, err = nil, h.failure(pos, &ConditionError{Condition: "panic", Err: cause})
		}
	}()
	v, err = h.Fn(args)
	if err != nil {
		return nil, h.failure(pos, err)
	}
	return v, nil
}

func (h *HostFunction) failure(pos int, err error) *CallError {
	return &CallError{
		Kind:  HostFailure,
		Pos:   pos,
		Name:  h.Name,
		Cause: err,
	}
}

func (h *HostFunction) String() string {
	return fmt.Sprintf("<external %q>", h.Name)
}
