package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/engine"
	"github.com/busrayesinn/eventra/internal/tui"
	"github.com/busrayesinn/eventra/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse and buy rewards",
	}
	cmd.AddCommand(newShopListCmd(), newShopBuyCmd(), newShopBoardCmd())
	return cmd
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rewards with lock and ownership state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			balance, err := svc.Balance(ctx)
			if err != nil {
				return err
			}
			views, err := svc.RewardViews(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n\n", ui.Heading(ui.IconTrophy, "Rewards"), ui.Points(balance))
			for _, v := range views {
				var state string
				switch {
				case v.Owned:
					state = ui.Good.Render("owned ✅")
				case v.Type == engine.RewardStreak:
					state = ui.Muted.Render(fmt.Sprintf("%s streak %d", ui.IconLock, v.StreakRequired))
				case v.Locked:
					state = ui.Bad.Render(fmt.Sprintf("%s %d pts", ui.IconLock, v.Cost))
				default:
					state = ui.Gold.Render(fmt.Sprintf("%d pts", v.Cost))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %-16s %s %s\n", v.Icon, v.Title, state, ui.Muted.Render(v.ID))
			}
			return nil
		},
	}
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <reward_id>",
		Short: "Buy a shop reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			reward, err := svc.Purchase(ctx, args[0])
			if err != nil {
				return err
			}
			balance, err := svc.Balance(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Gold.Render(ui.IconTrophy+" Unlocked"), reward.Icon, reward.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Points(balance)))
			return nil
		},
	}
}

func newShopBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive rewards board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunShop(ctx, svc, cmd.OutOrStdout())
		},
	}
}
