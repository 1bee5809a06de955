package cmd

import (
	"fmt"
	"os"

	"github.com/homonoid/hyperlisp/lisp"
	"github.com/homonoid/hyperlisp/lisp/lisplib"
	"github.com/homonoid/hyperlisp/parser/rdparser"
	"github.com/homonoid/hyperlisp/repl"
	"github.com/spf13/cobra"
)

var (
	rootTrace     bool
	rootCallDepth int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hyperlisp [file.hl]",
	Short: "hyperlisp interpreter",
	Long: `Run a hyperlisp program from a file, or start an interactive session
when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := newRuntime()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if len(args) == 0 {
			err = repl.RunRepl(rt, rootTrace)
			if err != nil {
				os.Exit(1)
			}
			return
		}
		source, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		_, err = rt.Run(args[0], string(source))
		if err != nil {
			reportError(err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootTrace, "trace", false,
		"Print each function call and the call stack of runtime errors")
	rootCmd.PersistentFlags().IntVar(&rootCallDepth, "max-depth", lisp.DefaultMaxHeight,
		"Maximum function call depth (0 for no limit)")
}

func newRuntime() (*lisp.Runtime, error) {
	return lisp.NewRuntime(
		lisp.WithReader(rdparser.NewReader()),
		lisp.WithMaximumCallDepth(rootCallDepth),
		lisp.WithTrace(rootTrace),
		lisp.WithLibrary(lisplib.LoadLibrary),
	)
}

func reportError(err error) {
	fmt.Fprintln(os.Stderr, repl.ErrorBanner)
	fmt.Fprintln(os.Stderr, err)
	d, ok := lisp.GetDiagnostic(err)
	if rootTrace && ok && d.Stack.Height() > 0 {
		d.Stack.DebugPrint(os.Stderr)
	}
}
