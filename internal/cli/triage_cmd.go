package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
)

func newTriageCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "triage SYMPTOMS...",
		Short: "Assess symptoms and suggest departments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symptoms := strings.Join(args, " ")

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner("assessing symptoms...")
			}
			result, err := app.Triage.Analyze(context.Background(), symptoms)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTriage(result))
			return nil
		},
	}
}
