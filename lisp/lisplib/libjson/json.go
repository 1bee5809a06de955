// Package libjson binds JSON encoding and decoding of hyperlisp values.
package libjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib/internal/libutil"
)

// LoadPackage binds the JSON functions in rt.
func LoadPackage(rt *lisp.Runtime) error {
	return libutil.Register(rt, Builtins(DefaultSerializer))
}

// Builtins returns functions that serialize values using s.
func Builtins(s *Serializer) []*libutil.Builtin {
	return []*libutil.Builtin{
		libutil.Function("json_dump", s.DumpBuiltin),
		libutil.Function("json_load", s.LoadBuiltin),
	}
}

// DefaultSerializer is the Serializer used by Dump and Load.
var DefaultSerializer = &Serializer{}

// Dump serializes v as JSON.
func Dump(v lisp.Value) ([]byte, error) {
	return DefaultSerializer.Dump(v)
}

// Load parses JSON and returns an equivalent Value.
func Load(b []byte) (lisp.Value, error) {
	return DefaultSerializer.Load(b)
}

// Serializer defines JSON serialization rules for hyperlisp values.
// Sequences are arrays, text values are strings and rationals are numbers.
// Absent values are null.  Objects load as sequences of [key value] pairs
// sorted by key, and booleans load as 1 or 0.
type Serializer struct {
	// Indent, when not empty, is used to indent nested JSON values.
	Indent string
}

func (s *Serializer) DumpBuiltin(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, 1); err != nil {
		return nil, err
	}
	b, err := s.Dump(args[0])
	if err != nil {
		return nil, err
	}
	return lisp.Text(b), nil
}

func (s *Serializer) LoadBuiltin(args []lisp.Value) (lisp.Value, error) {
	if err := libutil.ArgCount(args, 1, 1); err != nil {
		return nil, err
	}
	text, ok := args[0].(lisp.Text)
	if !ok {
		return nil, libutil.TypeError(0, "text", args[0])
	}
	return s.Load([]byte(text))
}

// Dump serializes v as JSON.
func (s *Serializer) Dump(v lisp.Value) ([]byte, error) {
	x, err := s.dumpValue(v)
	if err != nil {
		return nil, err
	}
	if s.Indent != "" {
		return json.MarshalIndent(x, "", s.Indent)
	}
	return json.Marshal(x)
}

func (s *Serializer) dumpValue(v lisp.Value) (interface{}, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case *lisp.Rational:
		return json.Number(v.String()), nil
	case lisp.Text:
		return string(v), nil
	case lisp.Sequence:
		xs := make([]interface{}, len(v))
		for i := range v {
			x, err := s.dumpValue(v[i])
			if err != nil {
				return nil, err
			}
			xs[i] = x
		}
		return xs, nil
	}
	return nil, lisp.ErrorConditionf("json-error", "cannot serialize %s", lisp.TypeName(v))
}

// Load parses b and returns a Value representing its structure.
func (s *Serializer) Load(b []byte) (lisp.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x interface{}
	err := dec.Decode(&x)
	if err != nil {
		return nil, &lisp.ConditionError{Condition: "json-error", Err: err}
	}
	return s.loadInterface(x)
}

func (s *Serializer) loadInterface(x interface{}) (lisp.Value, error) {
	switch x := x.(type) {
	case nil:
		return nil, nil
	case bool:
		return libutil.Bool(x), nil
	case string:
		return lisp.Text(x), nil
	case json.Number:
		r, ok := lisp.ParseRational(string(x))
		if !ok {
			return nil, lisp.ErrorConditionf("json-error", "invalid number: %s", x)
		}
		return r, nil
	case []interface{}:
		seq := make(lisp.Sequence, len(x))
		for i := range x {
			v, err := s.loadInterface(x[i])
			if err != nil {
				return nil, err
			}
			seq[i] = v
		}
		return seq, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		seq := make(lisp.Sequence, len(keys))
		for i, k := range keys {
			v, err := s.loadInterface(x[k])
			if err != nil {
				return nil, err
			}
			seq[i] = lisp.Sequence{lisp.Text(k), v}
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("unable to load json type: %T", x)
	}
}
