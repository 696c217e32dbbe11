package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ListCmd(r *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "list [id]",
		Short: "Show all units, or the unit with the given id",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, err := parseInt("id", args[0])
				if err != nil {
					return err
				}
				svc, err := r.service()
				if err != nil {
					return err
				}
				u, err := svc.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				if u != nil {
					fmt.Fprintln(cmd.OutOrStdout(), u)
				}
				return nil
			}

			svc, err := r.service()
			if err != nil {
				return err
			}
			units, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range units {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}
