package libmath_test

import (
	"testing"

	"github.com/homonoid/hyperlisp/hltest"
)

func TestArithmetic(t *testing.T) {
	tests := hltest.TestSuite{
		{"add", hltest.TestSequence{
			{"(add)", "0"},
			{"(add 1 2 3)", "6"},
			{"(+ 1 2.5)", "3.5"},
			{"(add 0.1 0.2)", "0.3"},
			{"(add -1 1)", "0"},
		}},
		{"sub", hltest.TestSequence{
			{"(sub 5)", "-5"},
			{"(sub 10 1 2)", "7"},
			{"(- 1 0.5)", "0.5"},
			{"(sub)", `Runtime error: external "sub" failed with arity-error: 0 argument(s) found where at least 1 is expected (line 1, column 2, in "test")`},
		}},
		{"mul", hltest.TestSequence{
			{"(mul)", "1"},
			{"(mul 2 3 4)", "24"},
			{"(* 0.5 0.5)", "0.25"},
		}},
		{"div", hltest.TestSequence{
			{"(div 6 3)", "2"},
			{"(/ 1 4)", "0.25"},
			{"(div 2)", "0.5"},
			{"(mul (div 1 3) 3)", "1"},
			{"(div 1 0)", `Runtime error: external "div" failed with zero-division-error: division by zero (line 1, column 2, in "test")`},
		}},
		{"type errors", hltest.TestSequence{
			{`(add "x" 1)`, `Runtime error: external "add" failed with type-error: argument 1 is not a rational: text (line 1, column 2, in "test")`},
			{`(mul 2 [1])`, `Runtime error: external "mul" failed with type-error: argument 2 is not a rational: sequence (line 1, column 2, in "test")`},
		}},
		{"aliases", hltest.TestSequence{
			{"(- 3 1)", "2"},
			{"(+ (* 2 3) (/ 1 2))", "6.5"},
		}},
	}
	hltest.RunTestSuite(t, tests)
}

func TestComparison(t *testing.T) {
	tests := hltest.TestSuite{
		{"equ", hltest.TestSequence{
			{"(equ 1 1)", "1"},
			{"(equ 1 1.0)", "1"},
			{"(equ 1 2)", "0"},
			{`(equ "a" "a" "a")`, "1"},
			{`(equ [1 "a"] [1 "a"])`, "1"},
			{`(equ [1 "a"] [1 "b"])`, "0"},
			{`(equ "1" 1)`, "0"},
		}},
		{"order", hltest.TestSequence{
			{"(lt 1 2 3)", "1"},
			{"(lt 1 3 2)", "0"},
			{"(gt 3 2.5 -1)", "1"},
			{"(gt 1 1)", "0"},
		}},
		{"rounding", hltest.TestSequence{
			{"(floor 2.5)", "2"},
			{"(floor -2.5)", "-3"},
			{"(ceil 2.5)", "3"},
			{"(ceil -2.5)", "-2"},
			{"(ceil 4)", "4"},
		}},
	}
	hltest.RunTestSuite(t, tests)
}
