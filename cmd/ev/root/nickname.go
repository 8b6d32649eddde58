package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/ui"
)

func newNicknameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nickname [name]",
		Short: "Show or set your nickname",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				name, err := svc.Nickname(ctx)
				if err != nil {
					return err
				}
				if name == "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No nickname set."))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Nickname", name))
				return nil
			}

			if err := svc.SetNickname(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Hello, %s!\n", ui.Good.Render(ui.IconSparkle), args[0])
			return nil
		},
	}

	return cmd
}
