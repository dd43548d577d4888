package vectorize

import (
	"fmt"
	"os"

	"git.sr.ht/~flobar/tabeval/cmd/internal"
	"github.com/spf13/cobra"
)

// CMD defines the tabeval vectorize command.
var CMD = &cobra.Command{
	Use:   "vectorize [CSV...]",
	Short: "Convert tables into numeric feature matrices",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

var flags internal.Flags

var printMatrix bool

func init() {
	flags.Init(CMD)
	CMD.Flags().BoolVarP(&printMatrix, "print", "p", false, "print the feature matrix as csv")
}

func run(_ *cobra.Command, args []string) error {
	config, err := flags.Config()
	if err != nil {
		return err
	}
	for _, arg := range args {
		table, err := internal.ReadTable(arg)
		if err != nil {
			return err
		}
		fm, _, err := internal.Vectorize(config, table)
		if err != nil {
			return fmt.Errorf("vectorize %s: %v", arg, err)
		}
		r, c := fm.Dims()
		fmt.Printf("%s: %d rows, %d feature columns\n", arg, r, c)
		for _, name := range fm.Names {
			fmt.Printf("  %s\n", name)
		}
		if printMatrix {
			if err := writeCSV(os.Stdout, fm); err != nil {
				return fmt.Errorf("vectorize %s: %v", arg, err)
			}
		}
	}
	return nil
}
