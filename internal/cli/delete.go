package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func DeleteCmd(r *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove the unit with the given id",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt("id", args[0])
			if err != nil {
				return err
			}

			svc, err := r.service()
			if err != nil {
				return err
			}
			if err := svc.Remove(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Info: unit %d deleted.\n", id)
			return nil
		},
	}
}
