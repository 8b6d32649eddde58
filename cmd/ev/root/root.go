package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ev",
	Short:         "Eventra - local events companion with points, streaks and badges",
	Long:          "Eventra is a local-first CLI for discovering events, bookmarking favorites, keeping notes, and earning gamified rewards stored on-device.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newLoginCmd(),
		newStatusCmd(),
		newNicknameCmd(),
		newEventsCmd(),
		newFavCmd(),
		newNoteCmd(),
		newJoinCmd(),
		newShopCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
