package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/storage"
	"github.com/busrayesinn/eventra/internal/ui"
)

func newJoinCmd() *cobra.Command {
	var name string
	var category string

	cmd := &cobra.Command{
		Use:   "join <event_id>",
		Short: "Join an event",
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
			if category == "" {
				category = "Other"
			}
			res, err := svc.Join(ctx, storage.Participation{
				EventID:  id,
				Name:     name,
				Category: category,
				JoinedAt: time.Now(),
			})
			if err != nil {
				return err
			}
			if res.Joined {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", ui.Points(res.Balance)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Event name for the stored record")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Event category")

	return cmd
}
