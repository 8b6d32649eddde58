package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/busrayesinn/eventra/internal/storage"
	"github.com/busrayesinn/eventra/internal/ui"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}
	cmd.AddCommand(newNoteListCmd(), newNoteAddCmd(), newNoteEditCmd(), newNoteRmCmd(), newNotePinCmd())
	return cmd
}

func newNoteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes (pinned first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			notes, err := svc.Notes(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconNote, "Notes"))
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing here yet."))
				return nil
			}
			for _, n := range notes {
				pin := "  "
				if n.Pinned {
					pin = "📌"
				}
				line := fmt.Sprintf("%s %s %s", pin, ui.Key.Render(n.Title), ui.Muted.Render(n.ID))
				if n.EventName != "" {
					line += " " + ui.Muted.Render("· "+n.EventName)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newNoteAddCmd() *cobra.Command {
	var body string
	var eventID int64
	var eventName string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			note := storage.Note{
				ID:        uuid.NewString(),
				Title:     args[0],
				Body:      body,
				EventName: eventName,
				CreatedAt: time.Now(),
			}
			if eventID != 0 {
				note.EventID = &eventID
			}

			res, err := svc.AddNote(ctx, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Saved %s (%d total)\n", ui.Good.Render(ui.IconNote), ui.Muted.Render(note.ID), len(res.Notes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&body, "body", "b", "", "Note body")
	cmd.Flags().Int64Var(&eventID, "event-id", 0, "Linked event ID")
	cmd.Flags().StringVar(&eventName, "event-name", "", "Linked event name")

	return cmd
}

func newNoteEditCmd() *cobra.Command {
	var title string
	var body string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note's title or body",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			notes, err := svc.Notes(ctx)
			if err != nil {
				return err
			}
			var target *storage.Note
			for i := range notes {
				if notes[i].ID == args[0] {
					target = &notes[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("note %s not found", args[0])
			}
			if title != "" {
				target.Title = title
			}
			if body != "" {
				target.Body = body
			}
			if _, err := svc.UpdateNote(ctx, *target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s\n", ui.Good.Render(ui.IconNote), ui.Muted.Render(target.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&body, "body", "b", "", "New body")

	return cmd
}

func newNoteRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			notes, err := svc.DeleteNote(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted (%d left)\n", ui.Warn.Render("🗑️"), len(notes))
			return nil
		},
	}
}

func newNotePinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin or unpin a note",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			notes, err := svc.TogglePin(ctx, args[0])
			if err != nil {
				return err
			}
			for _, n := range notes {
				if n.ID == args[0] {
					state := "unpinned"
					if n.Pinned {
						state = "pinned 📌"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconNote), ui.Muted.Render(n.ID), state)
					return nil
				}
			}
			return fmt.Errorf("note %s not found", args[0])
		},
	}
}
