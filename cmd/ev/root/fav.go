package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/storage"
	"github.com/busrayesinn/eventra/internal/ui"
)

func newFavCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage favorite events",
	}
	cmd.AddCommand(newFavListCmd(), newFavToggleCmd())
	return cmd
}

func newFavListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorite events",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			favorites, err := svc.Favorites(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconHeart, "Favorites"))
			if len(favorites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing here yet."))
				return nil
			}
			for _, f := range favorites {
				line := fmt.Sprintf("- #%d %s", f.ID, f.Name)
				if f.Category != "" {
					line += " " + ui.Muted.Render("("+f.Category+")")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newFavToggleCmd() *cobra.Command {
	var name string
	var category string

	cmd := &cobra.Command{
		Use:   "toggle <event_id>",
		Short: "Add or remove a favorite",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("event_id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("event_id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.ToggleFavorite(ctx, storage.Event{ID: id, Name: name, Category: category})
			if err != nil {
				return err
			}
			if res.Added {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Added #%d to favorites (%d total)\n", ui.Good.Render(ui.IconHeart), id, len(res.Favorites))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Removed #%d from favorites (%d total)\n", ui.Warn.Render("💔"), id, len(res.Favorites))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Event name for the stored snapshot")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Event category")

	return cmd
}
