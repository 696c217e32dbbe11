package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func OldestCmd(r *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "oldest",
		Short: "Show the ids of the units with the earliest construction date",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := r.service()
			if err != nil {
				return err
			}
			ids, err := svc.OldestUnitIDs(cmd.Context())
			if err != nil {
				return err
			}

			for _, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "Id: %d\n", id)
			}
			return nil
		},
	}
}
