package main

import (
	"git.sr.ht/~flobar/tabeval/cmd/eval"
	"git.sr.ht/~flobar/tabeval/cmd/vectorize"
	"git.sr.ht/~flobar/tabeval/cmd/version"
	"git.sr.ht/~flobar/tabeval/cmd/xval"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "tabeval",
	Short: "Vectorize tabular data and evaluate predictive models",
}

func init() {
	root.AddCommand(
		eval.CMD,
		vectorize.CMD,
		version.CMD,
		xval.CMD,
	)
}

func main() {
	root.Execute()
}
