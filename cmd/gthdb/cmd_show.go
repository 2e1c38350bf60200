package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lichen5/pyscf/pseudo"
)

func newShowCmd() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "show <file> <symbol> <name-or-alias>",
		Short: "Print one entry back in the database text format",
		Long: `Look up one potential by element symbol and name (or alias) and print
its record in the GTH-POTENTIALS text format.

Examples:
  gthdb show GTH_POTENTIALS C GTH-HCTH120-q4
  gthdb show GTH_POTENTIALS H GTH-LDA`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0], args[1], args[2], lenient)
		},
	}

	cmd.Flags().BoolVarP(&lenient, "lenient", "l", false, "skip malformed records instead of failing")

	return cmd
}

func runShow(name, symbol, potential string, lenient bool) error {
	db, err := loadDB(name, lenient)
	if err != nil {
		return err
	}
	e := db.LookupExact(symbol, potential)
	if e == nil {
		return fmt.Errorf("no potential %q for element %q in %s", potential, symbol, name)
	}
	return pseudo.Write(os.Stdout, e)
}
