package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lichen5/pyscf/pseudo"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a pseudopotential database file",
		Long: `Load the file in lenient mode and print every record that failed to
parse or validate. Exits nonzero if any did.

Example:
  gthdb check GTH_POTENTIALS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}
	return cmd
}

func runCheck(name string) error {
	db, diags, err := pseudo.FileRead(name, true)
	if err != nil {
		return err
	}
	for _, d := range diags {
		fmt.Println(d)
	}
	log.Infof("%s: %d entries loaded, %d rejected", name, db.Len(), len(diags))
	if len(diags) > 0 {
		return fmt.Errorf("%s: %d malformed records", name, len(diags))
	}
	return nil
}
