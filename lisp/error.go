package lisp

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/homonoid/hyperlisp/parser/ast"
)

// ErrorKind classifies a Diagnostic.
type ErrorKind uint

// Possible ErrorKind values
const (
	ErrUnknown ErrorKind = iota
	LexicalError
	SyntaxError
	UnboundSymbol
	ImmutableRebind
	InvalidArguments
	ArityMismatch
	NotCallable
	HostFailure
	StackOverflow
)

var errorKindStrings = []string{
	ErrUnknown:       "unknown-error",
	LexicalError:     "lexical-error",
	SyntaxError:      "syntax-error",
	UnboundSymbol:    "unbound-symbol",
	ImmutableRebind:  "immutable-rebind",
	InvalidArguments: "invalid-arguments",
	ArityMismatch:    "arity-mismatch",
	NotCallable:      "not-callable",
	HostFailure:      "host-failure",
	StackOverflow:    "stack-overflow",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorKindStrings) {
		return errorKindStrings[ErrUnknown]
	}
	return errorKindStrings[k]
}

// IsRuntime returns true for kinds raised during evaluation rather than while
// reading source text.
func (k ErrorKind) IsRuntime() bool {
	return k != LexicalError && k != SyntaxError && k != ErrUnknown
}

// Diagnostic is the error type returned by the reader and the evaluator.  It
// points at a byte offset in a Source; the line and column are computed from
// the offset when needed.
type Diagnostic struct {
	Kind    ErrorKind
	Message string
	Source  *ast.Source
	Pos     int
	// Near is true when the character at Pos is worth showing, as it is for
	// errors found while reading.
	Near bool

	// Details that depend on Kind.
	Name     string // unbound, rebound or failed external name
	Expected int    // arity mismatch
	Found    int    // arity mismatch
	Cause    error  // host failure

	// Stack is a copy of the call stack when a runtime error was raised.
	Stack *CallStack
}

var _ error = (*Diagnostic)(nil)

// NewDiagnostic returns a Diagnostic with the given message located at pos in
// src.
func NewDiagnostic(kind ErrorKind, message string, src *ast.Source, pos int, near bool) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: message,
		Source:  src,
		Pos:     pos,
		Near:    near,
	}
}

// Line returns the line number of the error, counted from 1.
func (d *Diagnostic) Line() int {
	return d.Source.Locate(d.Pos).Line
}

// Col returns the column of the error, counted from 1.
func (d *Diagnostic) Col() int {
	return d.Source.Locate(d.Pos).Col
}

// NearText describes the character at the error position.
func (d *Diagnostic) NearText() string {
	if d.Pos >= d.Source.End() {
		return "end-of-input"
	}
	c, _ := utf8.DecodeRuneInString(d.Source.Text[d.Pos:])
	return `"` + string(c) + `"`
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	var buf bytes.Buffer
	buf.WriteString(d.Message)
	if d.Near {
		buf.WriteString(" near ")
		buf.WriteString(d.NearText())
	}
	loc := d.Source.Locate(d.Pos)
	fmt.Fprintf(&buf, " (line %d, column %d, in %q)", loc.Line, loc.Col, d.Source.File)
	return buf.String()
}

// Unwrap returns the host error that caused a HostFailure.
func (d *Diagnostic) Unwrap() error {
	return d.Cause
}

// GetDiagnostic returns the Diagnostic in err's chain, if there is one.
func GetDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}

// CallError is returned by Callable implementations when a call fails before
// or outside of evaluating hyperlisp code.  The evaluator turns it into a
// Diagnostic located in the caller's source.
type CallError struct {
	Kind     ErrorKind
	Pos      int
	Name     string
	Expected int
	Found    int
	Cause    error
}

func (e *CallError) Error() string {
	switch e.Kind {
	case ArityMismatch:
		return fmt.Sprintf("%d argument(s) found where %d is expected", e.Found, e.Expected)
	case HostFailure:
		return fmt.Sprintf("external %q failed with %s: %v", e.Name, FailureKind(e.Cause), e.Cause)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	}
}

// Unwrap returns the underlying host error.
func (e *CallError) Unwrap() error {
	return e.Cause
}

// ConditionError is an error with a named condition, the preferred error type
// for host functions.  The condition is reported as the kind of a host
// failure.
type ConditionError struct {
	Condition string
	Err       error
}

// ErrorConditionf returns a ConditionError with a formatted message.
func ErrorConditionf(condition string, format string, v ...interface{}) error {
	return &ConditionError{
		Condition: condition,
		Err:       fmt.Errorf(format, v...),
	}
}

func (e *ConditionError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ConditionError) Unwrap() error {
	return e.Err
}

// FailureKind names the kind of a host error.  A ConditionError reports its
// condition.  Errors made by errors.New or fmt.Errorf report "error" and any
// other error reports its Go type.
func FailureKind(err error) string {
	if err == nil {
		return "error"
	}
	var cond *ConditionError
	if errors.As(err, &cond) {
		return cond.Condition
	}
	name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	switch name {
	case "errors.errorString", "fmt.wrapError", "fmt.wrapErrors":
		return "error"
	}
	return name
}
