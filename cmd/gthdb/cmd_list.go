package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lichen5/pyscf"
	"github.com/lichen5/pyscf/pseudo"
)

func newListCmd() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the entries of a pseudopotential database file",
		Long: `List every potential in the file, one line per entry, ordered by
atomic number and then by position in the file.

Examples:
  gthdb list GTH_POTENTIALS
  gthdb list --lenient broken_potentials.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], lenient)
		},
	}

	cmd.Flags().BoolVarP(&lenient, "lenient", "l", false, "skip malformed records instead of failing")

	return cmd
}

// loadDB reads the file and reports any lenient-mode diagnostics through
// the logger, so they show up with -v but don't pollute the output.
func loadDB(name string, lenient bool) (*pseudo.Database, error) {
	db, diags, err := pseudo.FileRead(name, lenient)
	if err != nil {
		return nil, err
	}
	for _, d := range diags {
		log.Warningf("%s: %s", name, d)
	}
	return db, nil
}

func runList(name string, lenient bool) error {
	db, err := loadDB(name, lenient)
	if err != nil {
		return err
	}
	entries := db.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		zi, _ := pyscf.AtomicNumber(entries[i].Symbol)
		zj, _ := pyscf.AtomicNumber(entries[j].Symbol)
		return zi < zj
	})
	for _, e := range entries {
		z, _ := pyscf.AtomicNumber(e.Symbol)
		aliases := ""
		if len(e.Aliases) > 0 {
			aliases = " (" + strings.Join(e.Aliases, ", ") + ")"
		}
		fmt.Printf("%3d %-2s %-20s channels=%d nprj=%d%s\n",
			z, e.Symbol, e.Name, len(e.ElConfig), len(e.Projectors), aliases)
	}
	return nil
}
