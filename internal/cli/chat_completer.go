package cli

import (
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/tuanvule/clinicli/internal/domain"
)

// slashCommands lists the chat commands offered by autocomplete.
func slashCommands() []prompt.Suggest {
	return []prompt.Suggest{
		{Text: "/help", Description: "Show available commands"},
		{Text: "/departments", Description: "List clinic departments"},
		{Text: "/slots", Description: "Show free slots for a date"},
		{Text: "/book", Description: "Book an appointment"},
		{Text: "/triage", Description: "Assess symptoms"},
		{Text: "/history", Description: "List saved conversations"},
		{Text: "/save", Description: "Export this conversation"},
		{Text: "/clear", Description: "Start a fresh conversation"},
		{Text: "/exit", Description: "Leave the assistant"},
	}
}

// departmentSuggestions offers catalog department names as arguments.
func departmentSuggestions() []prompt.Suggest {
	departments := domain.Departments()
	out := make([]prompt.Suggest, 0, len(departments))
	for _, d := range departments {
		out = append(out, prompt.Suggest{Text: d.Name, Description: d.Code})
	}
	return out
}

func (s *chatSession) completer(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()

	// Only complete slash commands; free text goes to the assistant.
	if !strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	parts := strings.Fields(text)
	word := d.GetWordBeforeCursor()
	endsWithSpace := strings.HasSuffix(text, " ")

	if len(parts) == 0 || (len(parts) == 1 && !endsWithSpace) {
		return prompt.FilterHasPrefix(slashCommands(), word, true)
	}

	switch strings.ToLower(parts[0]) {
	case "/slots":
		// Second argument is a department name.
		if len(parts) >= 2 || endsWithSpace {
			argCount := len(parts) - 1
			if endsWithSpace {
				argCount++
			}
			if argCount >= 2 {
				return prompt.FilterHasPrefix(departmentSuggestions(), word, true)
			}
		}
	}
	return nil
}
