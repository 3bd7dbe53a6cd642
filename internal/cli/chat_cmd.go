package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"
	"github.com/tuanvule/clinicli/internal/cli/formatter"
	"github.com/tuanvule/clinicli/internal/intelligence"
)

// chatSession holds mutable state across the REPL loop.
type chatSession struct {
	app      *App
	conv     *intelligence.ChatConversation
	convID   string
	wantExit bool
}

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive assistant with slash commands and autocomplete",
		Long: `Start an interactive chat session with the clinic assistant.
Free text is answered by the assistant; slash commands give direct
access to slots, booking, triage and history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app)
		},
	}
}

func runChat(app *App) error {
	sess := &chatSession{
		app:  app,
		conv: &intelligence.ChatConversation{},
	}

	fmt.Print(formatter.WelcomeBanner(app.LLMEnabled))

	if !app.interactive() {
		return sess.runScript(os.Stdin)
	}

	p := prompt.New(
		sess.executor,
		sess.completer,
		prompt.OptionPrefix("you ❯ "),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return sess.wantExit
		}),
		prompt.OptionTitle("clinicli chat"),
		prompt.OptionPrefixTextColor(prompt.Purple),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionSelectedSuggestionBGColor(prompt.Purple),
		prompt.OptionSelectedSuggestionTextColor(prompt.White),
		prompt.OptionDescriptionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionTextColor(prompt.LightGray),
		prompt.OptionMaxSuggestion(10),
	)
	p.Run()
	return nil
}

// runScript consumes piped input line by line. Used when stdin is not a
// terminal, where the prompt toolkit cannot run.
func (s *chatSession) runScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.executor(scanner.Text())
		if s.wantExit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *chatSession) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	if strings.HasPrefix(input, "/") {
		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]
		s.execSlash(cmd, args)
		return
	}

	s.execAssistantTurn(input)
}

func (s *chatSession) execSlash(cmd string, args []string) {
	switch cmd {
	case "/help":
		fmt.Print(formatter.ChatHelp())
	case "/departments":
		s.execDepartments()
	case "/slots":
		s.execSlots(args)
	case "/book":
		s.execBook()
	case "/triage":
		s.execTriage(args)
	case "/history":
		s.execHistory()
	case "/save":
		s.execSave()
	case "/clear":
		s.execClear()
	case "/exit", "/quit":
		fmt.Println(formatter.Dim("Take care."))
		s.wantExit = true
	default:
		fmt.Println(formatter.StyleYellow.Render(fmt.Sprintf("Unknown command %s. Type /help for a list.", cmd)))
	}
}

func (s *chatSession) execAssistantTurn(input string) {
	fmt.Print(formatter.StyleGreen.Render("assistant ❯ "))

	reply, err := s.app.Assistant.Reply(context.Background(), s.conv, input, func(delta string) {
		fmt.Print(delta)
	})
	fmt.Println()

	if err != nil {
		fmt.Println(formatter.StyleYellow.Render(fmt.Sprintf("(reply interrupted: %v)", err)))
	}
	if reply == nil {
		return
	}

	s.record(input, reply.Text)
}

// record persists one exchange. The conversation row is created on the
// first exchange so that sessions with no messages leave no history.
func (s *chatSession) record(userInput, assistantReply string) {
	if s.convID == "" {
		conv, err := s.app.Transcripts.StartConversation(context.Background())
		if err != nil {
			fmt.Println(formatter.Dim(fmt.Sprintf("(transcript not saved: %v)", err)))
			return
		}
		s.convID = conv.ID
	}
	if err := s.app.Transcripts.RecordExchange(context.Background(), s.convID, userInput, assistantReply); err != nil {
		fmt.Println(formatter.Dim(fmt.Sprintf("(transcript not saved: %v)", err)))
	}
}

func (s *chatSession) execDepartments() {
	fmt.Print(formatter.FormatDepartments(s.app.Booking.Departments()))
}

func (s *chatSession) execSlots(args []string) {
	date := todayOr(args)
	department := ""
	if len(args) > 1 {
		department = strings.Join(args[1:], " ")
	}

	avail, err := s.app.Booking.Availability(context.Background(), date, department)
	if err != nil {
		fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	fmt.Print(formatter.FormatAvailability(date, avail))
}

func (s *chatSession) execBook() {
	appt, err := runBookingWizard(s.app)
	if err != nil {
		fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	if appt == nil {
		fmt.Println(formatter.Dim("Booking cancelled."))
		return
	}
	fmt.Print(formatter.FormatBookingConfirmation(appt))
}

func (s *chatSession) execTriage(args []string) {
	if len(args) == 0 {
		fmt.Println(formatter.StyleYellow.Render("Usage: /triage <symptom description>"))
		return
	}
	symptoms := strings.Join(args, " ")

	stop := formatter.StartSpinner("assessing symptoms...")
	result, err := s.app.Triage.Analyze(context.Background(), symptoms)
	stop()

	if err != nil {
		fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	fmt.Print(formatter.FormatTriage(result))
}

func (s *chatSession) execHistory() {
	conversations, err := s.app.Transcripts.ListRecent(context.Background(), 10)
	if err != nil {
		fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	fmt.Print(formatter.FormatConversationList(conversations))
}

func (s *chatSession) execSave() {
	if s.convID == "" {
		fmt.Println(formatter.StyleYellow.Render("Nothing to save yet."))
		return
	}
	path, err := s.app.Transcripts.Export(context.Background(), s.convID, s.app.exportDir())
	if err != nil {
		fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", err)))
		return
	}
	fmt.Printf("Saved conversation to %s\n", formatter.Bold(path))
}

func (s *chatSession) execClear() {
	fmt.Print("\033[H\033[2J")
	s.conv = &intelligence.ChatConversation{}
	s.convID = ""
	fmt.Println(formatter.Dim("Started a fresh conversation."))
}
