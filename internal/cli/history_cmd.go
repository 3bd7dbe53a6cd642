package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(app, 10)
		},
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryExportCmd(app),
		newHistoryRemoveCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(app, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of conversations to show")

	return cmd
}

func runHistoryList(app *App, limit int) error {
	conversations, err := app.Transcripts.ListRecent(context.Background(), limit)
	if err != nil {
		return err
	}
	fmt.Print(formatter.FormatConversationList(conversations))
	return nil
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a conversation transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, msgs, err := app.Transcripts.GetTranscript(context.Background(), args[0])
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Conversation from %s", conv.StartedAt.Local().Format("2006-01-02 15:04"))
			return runTranscriptPager(app, title, formatter.FormatTranscript(conv, msgs))
		},
	}
}

func newHistoryExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export [ID]",
		Short: "Export a conversation to a text file (default most recent)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if dir == "" {
				dir = app.exportDir()
			}

			var id string
			if len(args) > 0 {
				id = args[0]
			} else {
				recent, err := app.Transcripts.ListRecent(ctx, 1)
				if err != nil {
					return err
				}
				if len(recent) == 0 {
					return fmt.Errorf("no conversations to export")
				}
				id = recent[0].ID
			}

			path, err := app.Transcripts.Export(ctx, id, dir)
			if err != nil {
				return err
			}
			fmt.Printf("Saved conversation to %s\n", formatter.Bold(path))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write the export into")

	return cmd
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Transcripts.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed conversation %s\n", args[0])
			return nil
		},
	}
}
