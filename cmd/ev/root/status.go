package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, balance, streak and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}

			name := stats.Nickname
			if name == "" {
				name = "anonymous"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Profile"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Nickname", name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Points(stats.Balance)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFire, stats.Streak)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Activity"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s favorites: %d\n", ui.IconHeart, stats.Favorites)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s notes: %d\n", ui.IconNote, stats.Notes)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s joined events: %d\n", ui.IconTicket, stats.Participations)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s badges: %d\n", ui.IconTrophy, stats.Badges)

			if len(stats.ByCategory) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("🎪 Joined by category"))
				categories := make([]string, 0, len(stats.ByCategory))
				for c := range stats.ByCategory {
					categories = append(categories, c)
				}
				sort.Strings(categories)
				for _, c := range categories {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s: %d\n", c, stats.ByCategory[c])
				}
			}
			return nil
		},
	}

	return cmd
}
