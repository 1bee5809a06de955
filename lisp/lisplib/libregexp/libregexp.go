// Package libregexp binds regular expression matching on text.  Patterns use
// the syntax of the Go regexp package.
package libregexp

import (
	"regexp"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/internal/libutil"
)

// DefaultCacheSize is the number of compiled patterns a Matcher keeps.
const DefaultCacheSize = 128

// LoadPackage binds the regular expression functions in rt.  Compiled
// patterns are cached for the runtime.
func LoadPackage(rt *lisp.Runtime) error {
	return libutil.Register(rt, NewMatcher(DefaultCacheSize).Builtins())
}

// Matcher implements the regular expression functions.  It keeps up to a
// fixed number of compiled patterns.  A Matcher is not safe for concurrent
// use.
type Matcher struct {
	size  int
	cache map[string]*regexp.Regexp
}

// NewMatcher returns a Matcher that caches at most size compiled patterns.
func NewMatcher(size int) *Matcher {
	return &Matcher{
		size:  size,
		cache: make(map[string]*regexp.Regexp),
	}
}

// Len returns the number of cached patterns.
func (m *Matcher) Len() int {
	return len(m.cache)
}

func (m *Matcher) Builtins() []*libutil.Builtin {
	return []*libutil.Builtin{
		libutil.Function("regexp_match", m.BuiltinIsMatch),
		libutil.Function("regexp_find", m.BuiltinFind),
		libutil.Function("regexp_find_all", m.BuiltinFindAll),
		libutil.Function("regexp_replace", m.BuiltinReplace),
	}
}

// BuiltinIsMatch returns 1 if the pattern matches the text and 0 otherwise.
func (m *Matcher) BuiltinIsMatch(args []lisp.Value) (lisp.Value, error) {
	re, text, err := m.getArgs(args, 2)
	if err != nil {
		return nil, err
	}
	return libutil.Bool(re.MatchString(text)), nil
}

// BuiltinFind returns the leftmost match of the pattern in the text, or
// nothing when there is no match.
func (m *Matcher) BuiltinFind(args []lisp.Value) (lisp.Value, error) {
	re, text, err := m.getArgs(args, 2)
	if err != nil {
		return nil, err
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return nil, nil
	}
	return lisp.Text(text[loc[0]:loc[1]]), nil
}

// BuiltinFindAll returns a sequence of all matches of the pattern in the
// text.
func (m *Matcher) BuiltinFindAll(args []lisp.Value) (lisp.Value, error) {
	re, text, err := m.getArgs(args, 2)
	if err != nil {
		return nil, err
	}
	matches := re.FindAllString(text, -1)
	seq := make(lisp.Sequence, len(matches))
	for i, m := range matches {
		seq[i] = lisp.Text(m)
	}
	return seq, nil
}

// BuiltinReplace replaces every match of the pattern in the text.  The
// replacement may refer to submatches as $1 or ${name}.
func (m *Matcher) BuiltinReplace(args []lisp.Value) (lisp.Value, error) {
	re, text, err := m.getArgs(args, 3)
	if err != nil {
		return nil, err
	}
	repl, ok := args[2].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(2, "text", args[2])
	}
	return lisp.Text(re.ReplaceAllString(text, string(repl))), nil
}

func (m *Matcher) getArgs(args []lisp.Value, n int) (*regexp.Regexp, string, error) {
	if err := libutil.ArgCount(args, n, n); err != nil {
		return nil, "", err
	}
	patt, ok := args[0].(lisp.Text)
	if !ok {
		return nil, "", libutil.TypeError(0, "text", args[0])
	}
	text, ok := args[1].(lisp.Text)
	if !ok {
		return nil, "", libutil.TypeError(1, "text", args[1])
	}
	re, err := m.compile(string(patt))
	if err != nil {
		return nil, "", err
	}
	return re, string(text), nil
}

// compile returns the compiled pattern, from the cache when possible.  A full
// cache is emptied before a new pattern is added.
func (m *Matcher) compile(patt string) (*regexp.Regexp, error) {
	if re, ok := m.cache[patt]; ok {
		return re, nil
	}
	re, err := regexp.Compile(patt)
	if err != nil {
		return nil, &lisp.ConditionError{Condition: "invalid-regexp-pattern", Err: err}
	}
	if m.size <= 0 {
		return re, nil
	}
	if len(m.cache) >= m.size {
		m.cache = make(map[string]*regexp.Regexp)
	}
	m.cache[patt] = re
	return re, nil
}
