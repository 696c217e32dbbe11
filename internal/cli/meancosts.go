package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func MeanCostsCmd(r *Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "meancosts",
		Short: "Show the average monthly cost over all units",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := r.service()
			if err != nil {
				return err
			}
			avg, err := svc.AverageMonthlyCost(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), avg.StringFixed(2))
			return nil
		},
	}
}
