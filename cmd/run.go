package cmd

import (
	"fmt"
	"os"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run hyperlisp code",
	Long: `Run hyperlisp code supplied via the command line or files.  Every
program runs in the same runtime, so bindings made by one are visible to the
programs after it.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		progs, err := runReadPrograms(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		rt, err := newRuntime()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, prog := range progs {
			v, err := rt.Run(prog.name, prog.text)
			if err != nil {
				reportError(err)
				os.Exit(1)
			}
			if runPrint && v != nil {
				fmt.Println(lisp.Format(v))
			}
		}
	},
}

type program struct {
	name string
	text string
}

func runReadPrograms(args []string) ([]program, error) {
	progs := make([]program, len(args))
	if runExpression {
		for i := range args {
			progs[i] = program{fmt.Sprintf("<arg %d>", i+1), args[i]}
		}
		return progs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		progs[i] = program{path, string(b)}
	}
	return progs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as hyperlisp programs")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print program values to stdout")
}
