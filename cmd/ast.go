package cmd

import (
	"fmt"
	"os"

	"github.com/homonoid/hyperlisp/parser/ast"
	"github.com/homonoid/hyperlisp/parser/rdparser"
	"github.com/spf13/cobra"
)

// astCmd represents the ast command
var astCmd = &cobra.Command{
	Use:   "ast file.hl",
	Short: "Print the syntax tree of a hyperlisp file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		root, err := rdparser.NewReader().Read(ast.NewSource(args[0], string(source)))
		if err != nil {
			reportError(err)
			os.Exit(1)
		}
		fmt.Print(root.Dump())
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
