package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vbonduro/unitregistry/internal/domain"
)

func CountCmd(r *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "count [EW|MW]",
		Short: "Count all units, or the units of one type",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match := domain.AnyUnit
			if len(args) == 1 {
				kind, err := domain.ParseKind(args[0])
				if err != nil {
					return err
				}
				match = domain.OfKind(kind)
			}

			svc, err := r.service()
			if err != nil {
				return err
			}
			n, err := svc.Count(cmd.Context(), match)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
