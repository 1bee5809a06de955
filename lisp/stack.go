package lisp

import (
	"fmt"
	"io"

	"github.com/homonoid/hyperlisp/parser/ast"
)

// DefaultMaxHeight is the call depth allowed when a Runtime is not configured
// with WithMaximumCallDepth.
const DefaultMaxHeight = 10000

// CallStack is a function call stack.
type CallStack struct {
	Frames    []CallFrame
	MaxHeight int // no limit when zero
}

// CallFrame is one frame in the CallStack
type CallFrame struct {
	Name   string
	Source *ast.Source
	Pos    int // position of the call expression
}

func (f *CallFrame) String() string {
	if f.Source == nil {
		return f.Name
	}
	return fmt.Sprintf("%s (%s)", f.Name, f.Source.Locate(f.Pos))
}

// Copy creates a copy of the current stack so that it can be attach to a
// runtime error.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{Frames: frames, MaxHeight: s.MaxHeight}
}

// Height returns the number of frames on the stack.
func (s *CallStack) Height() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

// Top returns the CallFrame at the top of the stack or nil if none exists.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Push pushes f onto s.  Push returns false and leaves s unchanged if the
// stack is already at its maximum height.
func (s *CallStack) Push(f CallFrame) bool {
	if s.MaxHeight > 0 && len(s.Frames) >= s.MaxHeight {
		return false
	}
	s.Frames = append(s.Frames, f)
	return true
}

// Pop removes the top CallFrame from the stack and returns it.  Pop panics if
// the stack is empty.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// DebugPrint prints s
func (s *CallStack) DebugPrint(w io.Writer) (int, error) {
	n, err := fmt.Fprintf(w, "Stack Trace [%d frames -- entrypoint last]:\n", len(s.Frames))
	if err != nil {
		return n, err
	}
	indent := "  "
	for i := len(s.Frames) - 1; i >= 0; i-- {
		_n, err := fmt.Fprintf(w, "%sheight %d: %s\n", indent, i, s.Frames[i].String())
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
