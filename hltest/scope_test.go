package hltest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"top-level bindings", TestSequence{
			{"(bind n 1)", ""},
			{"(bind get_n (func () n))", ""},
			{"(get_n)", "1"},
			// closures see later changes to the scope they were made in
			{"(bind n 2)", ""},
			{"(get_n)", "2"},
		}},
		{"nested closures", TestSequence{
			{"(bind make_adder (func x (func y (add x y))))", ""},
			{"(bind inc (make_adder 1))", ""},
			{"(inc 41)", "42"},
			{"((make_adder 10) 5)", "15"},
			{"(bind x 100)", ""},
			{"(inc 1)", "2"},
		}},
		{"call scope", TestSequence{
			{"((func x (bind inner x) inner) 1)", "1"},
			{"inner", `Runtime error: symbol "inner" is not bound to any value (line 1, column 1, in "test")`},
			{"(bind v 1)", ""},
			{"((func () (bind v 2) v))", "2"},
			{"v", "1"},
			// parameters shadow outer bindings
			{"((func v (mul v 10)) 3)", "30"},
			{"v", "1"},
		}},
		{"recursion", TestSequence{
			// a function can refer to itself through the scope it was bound in
			{"(bind twice (func (f x) (f (f x))))", ""},
			{"(bind quad (func x (twice (func y (mul y 2)) (twice (func y (mul y 2)) x))))", ""},
			{"(quad 1)", "16"},
			{"(bind loop (func x (loop x)))", ""},
			{"(loop 1)", `Runtime error: maximum call depth exceeded (10000) (line 1, column 21, in "test")`},
			// the stack is unwound after an error
			{"(quad 2)", "32"},
		}},
		{"host names", TestSequence{
			{"((func add add) 5)", "5"},
			{"((func () (bind add 1)))", `Runtime error: "add" is bound externally, so it cannot be changed (line 1, column 17, in "test")`},
		}},
	}
	RunTestSuite(t, tests)
}
