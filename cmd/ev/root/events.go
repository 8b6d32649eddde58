package root

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/events"
	"github.com/busrayesinn/eventra/internal/ui"
)

func newEventsCmd() *cobra.Command {
	var freeOnly bool
	var category string
	var baseURL string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events from the remote catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client := events.NewClient(baseURL, os.Getenv("EVENTRA_TOKEN"))

			list, err := client.List(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconEvent, "Events"))
			shown := 0
			for _, ev := range list {
				if freeOnly && !ev.IsFree {
					continue
				}
				if category != "" && !strings.EqualFold(ev.Category, category) {
					continue
				}
				line := fmt.Sprintf("- #%d %s", ev.ID, ev.Name)
				if ev.Category != "" {
					line += " " + ui.Muted.Render("("+ev.Category+")")
				}
				if ev.IsFree {
					line += " " + ui.Good.Render("free")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No events matched."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&freeOnly, "free", false, "Only free events")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category name")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Override the catalog base URL")

	return cmd
}
