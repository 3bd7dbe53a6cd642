package formatter

import (
	"fmt"
	"strings"

	"github.com/tuanvule/clinicli/internal/domain"
)

// WelcomeBanner renders the chat REPL greeting.
func WelcomeBanner(llmEnabled bool) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Clinic Assistant") + "\n")
	b.WriteString(Dim("Describe your symptoms or ask about appointments. Type /help for commands.") + "\n")
	if !llmEnabled {
		b.WriteString(StyleYellow.Render("Assistant is offline (no LLM configured); responses are rule-based.") + "\n")
	}
	return b.String()
}

// ChatHelp renders the slash-command reference for the REPL.
func ChatHelp() string {
	cmds := [][]string{
		{"/help", "show this help"},
		{"/departments", "list clinic departments"},
		{"/slots [date] [department]", "show free appointment slots"},
		{"/book", "book an appointment"},
		{"/triage <symptoms>", "assess symptoms and suggest departments"},
		{"/history", "list saved conversations"},
		{"/save", "export this conversation to a text file"},
		{"/clear", "start a fresh conversation"},
		{"/exit", "leave the assistant"},
	}
	var b strings.Builder
	b.WriteString(Header("Commands"))
	b.WriteString("\n")
	for _, c := range cmds {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleBlue.Render(fmt.Sprintf("%-28s", c[0])), Dim(c[1])))
	}
	return b.String()
}

// FormatConversationList renders recent conversations as a table.
func FormatConversationList(conversations []*domain.Conversation) string {
	if len(conversations) == 0 {
		return Dim("No saved conversations.") + "\n"
	}
	rows := make([][]string, 0, len(conversations))
	for _, c := range conversations {
		rows = append(rows, []string{
			Dim(shortID(c.ID)),
			c.StartedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"ID", "Started"}, rows)
}

// FormatTranscript renders a full conversation transcript.
func FormatTranscript(conv *domain.Conversation, messages []*domain.Message) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Conversation from %s", conv.StartedAt.Local().Format("2006-01-02 15:04"))))
	b.WriteString("\n")
	if len(messages) == 0 {
		b.WriteString(Dim("(empty)") + "\n")
		return b.String()
	}
	for _, m := range messages {
		switch m.Role {
		case domain.RoleUser:
			b.WriteString(StyleBlue.Render("You: ") + m.Content + "\n\n")
		case domain.RoleAssistant:
			b.WriteString(StyleGreen.Render("Assistant: ") + m.Content + "\n\n")
		}
	}
	return b.String()
}
