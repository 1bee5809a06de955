package lisp

import (
	"fmt"
	"strings"

	"github.com/homonoid/hyperlisp/parser/ast"
)

// Names of the special forms.  They are recognized by the evaluator before
// any scope lookup.
const (
	BindSymbol = "bind"
	FuncSymbol = "func"
)

// evaluator evaluates nodes from one source text.
type evaluator struct {
	rt  *Runtime
	src *ast.Source
}

func (ev *evaluator) eval(n *ast.Node, scope *Scope) (Value, error) {
	switch n.Type {
	case ast.Root, ast.Array:
		return ev.evalSequence(n.Children, scope)
	case ast.List:
		if len(n.Children) == 0 {
			return Sequence{}, nil
		}
		switch n.Head().Type {
		case ast.Identifier, ast.List:
			return ev.evalForm(n, scope)
		}
		return ev.evalSequence(n.Children, scope)
	case ast.Identifier:
		v, ok := scope.Get(n.Text)
		if !ok {
			err := ev.errorf(UnboundSymbol, n.Pos, "symbol %q is not bound to any value", n.Text)
			err.Name = n.Text
			return nil, err
		}
		return v, nil
	case ast.Number:
		x, ok := ParseRational(n.Text)
		if !ok {
			panic(fmt.Sprintf("invalid number literal: %q", n.Text))
		}
		return x, nil
	case ast.String:
		return Text(n.Text), nil
	default:
		panic(fmt.Sprintf("invalid node type: %v", n.Type))
	}
}

// evalSequence evaluates each node against scope and collects the results.
func (ev *evaluator) evalSequence(nodes []*ast.Node, scope *Scope) (Sequence, error) {
	seq := make(Sequence, len(nodes))
	for i, n := range nodes {
		v, err := ev.eval(n, scope)
		if err != nil {
			return nil, err
		}
		seq[i] = v
	}
	return seq, nil
}

// evalForm evaluates an application form, a list whose head is an identifier
// or a list.
func (ev *evaluator) evalForm(n *ast.Node, scope *Scope) (Value, error) {
	head, tail := n.Head(), n.Tail()
	if head.Type == ast.Identifier {
		switch head.Text {
		case BindSymbol:
			return ev.evalBind(head, tail, scope)
		case FuncSymbol:
			return ev.evalFunc(head, tail, scope)
		}
	}
	callee, err := ev.eval(head, scope)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(Callable)
	if !ok {
		if len(tail) == 0 {
			// (x) is x when x cannot be called.
			return callee, nil
		}
		return nil, ev.errorf(NotCallable, head.Pos, "%s is not callable", TypeName(callee))
	}
	args := make([]Value, len(tail))
	for i, arg := range tail {
		args[i], err = ev.eval(arg, scope)
		if err != nil {
			return nil, err
		}
	}
	return ev.call(head, fn, args)
}

// (bind Identifier expr)
func (ev *evaluator) evalBind(head *ast.Node, tail []*ast.Node, scope *Scope) (Value, error) {
	if len(tail) != 2 || tail[0].Type != ast.Identifier {
		return nil, ev.errorf(InvalidArguments, head.Pos, "invalid arguments to %s", BindSymbol)
	}
	name := tail[0]
	if ev.rt.IsExternal(name.Text) {
		err := ev.errorf(ImmutableRebind, name.Pos, "%q is bound externally, so it cannot be changed", name.Text)
		err.Name = name.Text
		return nil, err
	}
	v, err := ev.eval(tail[1], scope)
	if err != nil {
		return nil, err
	}
	scope.Put(name.Text, v)
	return nil, nil
}

// (func Identifier body...) or (func (Identifier...) body...)
func (ev *evaluator) evalFunc(head *ast.Node, tail []*ast.Node, scope *Scope) (Value, error) {
	if len(tail) < 2 {
		return nil, ev.errorf(InvalidArguments, head.Pos, "invalid arguments to %s", FuncSymbol)
	}
	formals := tail[0]
	var params []*ast.Node
	switch formals.Type {
	case ast.List, ast.Array:
		params = formals.Children
	case ast.Identifier:
		params = []*ast.Node{formals}
	default:
		return nil, ev.errorf(InvalidArguments, head.Pos, "invalid arguments to %s", FuncSymbol)
	}
	names := make([]string, len(params))
	seen := make(map[string]bool, len(params))
	for i, p := range params {
		if p.Type != ast.Identifier || seen[p.Text] {
			return nil, ev.errorf(InvalidArguments, head.Pos, "invalid arguments to %s", FuncSymbol)
		}
		seen[p.Text] = true
		names[i] = p.Text
	}
	return &Closure{
		Params: names,
		Body:   tail[1:],
		Scope:  scope,
		Source: ev.src,
		Pos:    head.Pos,
	}, nil
}

// call applies fn to args inside a new stack frame.
func (ev *evaluator) call(head *ast.Node, fn Callable, args []Value) (Value, error) {
	stack := ev.rt.Stack
	frame := CallFrame{Name: callName(head, fn), Source: ev.src, Pos: head.Pos}
	if !stack.Push(frame) {
		return nil, ev.errorf(StackOverflow, head.Pos, "maximum call depth exceeded (%d)", stack.MaxHeight)
	}
	defer stack.Pop()
	if ev.rt.Trace {
		fmt.Fprintf(ev.rt.Stderr, "%s%s\n", strings.Repeat("  ", stack.Height()-1), frame.String())
	}
	v, err := fn.Call(ev.rt, head.Pos, args)
	if err != nil {
		if cerr, ok := err.(*CallError); ok {
			return nil, ev.callError(cerr)
		}
		return nil, err
	}
	return v, nil
}

func callName(head *ast.Node, fn Callable) string {
	if h, ok := fn.(*HostFunction); ok {
		return h.Name
	}
	if head.Type == ast.Identifier {
		return head.Text
	}
	return fmt.Sprint(fn)
}

func (ev *evaluator) callError(cerr *CallError) *Diagnostic {
	err := ev.errorf(cerr.Kind, cerr.Pos, "%s", cerr.Error())
	err.Name = cerr.Name
	err.Expected = cerr.Expected
	err.Found = cerr.Found
	err.Cause = cerr.Cause
	return err
}

// errorf returns a runtime Diagnostic located at pos.
func (ev *evaluator) errorf(kind ErrorKind, pos int, format string, v ...interface{}) *Diagnostic {
	err := NewDiagnostic(kind, "Runtime error: "+fmt.Sprintf(format, v...), ev.src, pos, false)
	err.Stack = ev.rt.Stack.Copy()
	return err
}
