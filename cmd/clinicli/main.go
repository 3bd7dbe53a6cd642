package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/tuanvule/clinicli/internal/cli"
	"github.com/tuanvule/clinicli/internal/db"
	"github.com/tuanvule/clinicli/internal/intelligence"
	"github.com/tuanvule/clinicli/internal/llm"
	"github.com/tuanvule/clinicli/internal/repository"
	"github.com/tuanvule/clinicli/internal/service"
	"github.com/tuanvule/clinicli/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	// Determine data directory: env var or default ~/.clinicli
	dataDir := os.Getenv("CLINICLI_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".clinicli")
	}

	// Open the JSON appointment book
	book, err := store.OpenAppointmentBook(filepath.Join(dataDir, "appointments.json"))
	if err != nil {
		return fmt.Errorf("opening appointment book: %w", err)
	}

	// Open the transcript database
	database, err := db.OpenDB(filepath.Join(dataDir, "clinicli.db"))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	transcriptRepo := repository.NewSQLiteTranscriptRepo(database)

	// Wire the LLM client. Assistant and triage degrade to rule-based
	// answers when no deployment is configured.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewAzureClient(llmCfg, observer)

	app := &cli.App{
		Booking:     service.NewBookingService(book),
		Transcripts: service.NewTranscriptService(transcriptRepo),
		Assistant:   intelligence.NewAssistantService(llmClient),
		Triage:      intelligence.NewTriageService(llmClient),
		LLMEnabled:  llmCfg.Configured(),
		ExportDir:   cli.DefaultExportDir,
	}

	// Detect interactive terminal for wizard and pager entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
