package repl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/parser/rdparser"
)

// SourceName identifies text read by the repl in diagnostics.
const SourceName = "<stdin>"

// ErrorBanner precedes every error the repl reports.
const ErrorBanner = "=== Sorry! ==="

// Session evaluates lines of input in a runtime.  Lines are buffered until
// every list and array they open is closed.  Top-level bindings persist for
// the life of the session.
type Session struct {
	rt     *lisp.Runtime
	out    io.Writer
	errOut io.Writer
	// Trace makes the session print the call stack of runtime errors.
	Trace bool

	buf bytes.Buffer
}

// NewSession returns a Session that prints values to out and errors to
// errOut.
func NewSession(rt *lisp.Runtime, out, errOut io.Writer) *Session {
	return &Session{
		rt:     rt,
		out:    out,
		errOut: errOut,
	}
}

// Prompt returns the prompt to show before reading the next line.  Input is
// only left buffered while it is incomplete.
func (s *Session) Prompt() string {
	if s.buf.Len() > 0 {
		return rdparser.ContinuePrompt
	}
	return rdparser.Prompt
}

// Reset drops any buffered input.
func (s *Session) Reset() {
	s.buf.Reset()
}

// Feed adds a line of input to the session.  When the buffered input is
// complete it is run and the buffer is cleared.  Feed returns false if the
// input was buffered without running.
func (s *Session) Feed(line string) bool {
	if s.buf.Len() > 0 {
		s.buf.WriteByte('\n')
	}
	s.buf.WriteString(line)
	text := s.buf.String()
	if rdparser.Incomplete(text) {
		return false
	}
	s.buf.Reset()
	if strings.TrimSpace(text) == "" {
		return true
	}
	v, err := s.rt.Run(SourceName, text)
	if err != nil {
		s.ReportError(err)
		return true
	}
	if v != nil {
		fmt.Fprintln(s.out, lisp.Format(v))
	}
	return true
}

// ReportError writes err under the error banner.
func (s *Session) ReportError(err error) {
	fmt.Fprintln(s.errOut, ErrorBanner)
	fmt.Fprintln(s.errOut, err)
	d, ok := lisp.GetDiagnostic(err)
	if s.Trace && ok && d.Stack.Height() > 0 {
		d.Stack.DebugPrint(s.errOut)
	}
}

// RunRepl runs a simple repl on the terminal until the end of input.  An
// interrupt discards the lines buffered so far.
func RunRepl(rt *lisp.Runtime, trace bool) error {
	rl, err := readline.New(rdparser.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	s := NewSession(rt, rl.Stdout(), rl.Stderr())
	s.Trace = trace
	for {
		rl.SetPrompt(s.Prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.Reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			errln(err)
			return err
		}
		s.Feed(line)
	}
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
