package cli

import (
	"github.com/spf13/cobra"
	"github.com/tuanvule/clinicli/internal/intelligence"
	"github.com/tuanvule/clinicli/internal/service"
)

// DefaultExportDir is where conversation logs are written when no
// directory is given.
const DefaultExportDir = "conversation_logs"

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Booking     service.BookingService
	Transcripts service.TranscriptService
	Assistant   intelligence.AssistantService
	Triage      intelligence.TriageService

	// LLMEnabled reports whether an LLM deployment is configured.
	// Assistant and Triage still work without one, falling back to
	// rule-based answers.
	LLMEnabled bool

	// ExportDir is where /save writes conversation logs.
	ExportDir string

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) exportDir() string {
	if a.ExportDir != "" {
		return a.ExportDir
	}
	return DefaultExportDir
}

// NewRootCmd creates the top-level "clinicli" command and registers all
// subcommands against the provided App. Running it without a subcommand
// on a terminal starts the chat assistant.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "clinicli",
		Short: "Clinic assistant for appointments and symptom triage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app)
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newDepartmentsCmd(app),
		newSlotsCmd(app),
		newBookCmd(app),
		newAppointmentsCmd(app),
		newTriageCmd(app),
		newHistoryCmd(app),
	)

	return root
}
