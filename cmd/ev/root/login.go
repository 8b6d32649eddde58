package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/ui"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Record today's login and update the daily streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CheckDailyLogin(ctx)
			if err != nil {
				return err
			}

			if !res.Counted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Already checked in today. Streak: %s %d\n",
					ui.Muted.Render(ui.IconInfo), ui.IconFire, res.Streak)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d\n", ui.Good.Render("Checked in!"), ui.IconFire, res.Streak)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Points(res.Balance)))
			for _, reward := range res.Unlocked {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Gold.Render(ui.IconTrophy+" New badge:"), reward.Icon, reward.Title)
			}
			return nil
		},
	}

	return cmd
}
