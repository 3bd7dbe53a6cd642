package intelligence

import (
	"strings"

	"github.com/tuanvule/clinicli/internal/domain"
)

// departmentKeywords maps symptom keywords to catalog department names.
// Matching is case-insensitive substring search over the description.
var departmentKeywords = map[string][]string{
	"Dentistry":        {"tooth", "teeth", "gum", "jaw", "cavity", "braces"},
	"ENT":              {"ear", "nose", "throat", "sinus", "hearing", "tonsil", "hoarse", "sore throat"},
	"Ophthalmology":    {"eye", "vision", "blurry", "myopia", "astigmatism", "red eye"},
	"Dermatology":      {"skin", "rash", "acne", "itch", "eczema", "allergy", "hives"},
	"Pediatrics":       {"child", "baby", "infant", "toddler", "vaccination"},
	"General Medicine": {"fever", "headache", "cough", "fatigue", "stomach", "nausea", "dizzy", "flu", "cold", "pain"},
}

// redFlagKeywords escalate severity to high regardless of department.
var redFlagKeywords = []string{
	"chest pain", "difficulty breathing", "shortness of breath",
	"unconscious", "severe bleeding", "seizure",
}

// DeterministicTriage suggests departments by keyword matching when no
// LLM answer is available. General Medicine is the default when nothing
// matches.
func DeterministicTriage(symptoms string) *domain.TriageResult {
	lower := strings.ToLower(symptoms)

	var matched []string
	seen := make(map[string]bool)
	for _, dept := range domain.DepartmentNames() {
		for _, kw := range departmentKeywords[dept] {
			if strings.Contains(lower, kw) && !seen[dept] {
				seen[dept] = true
				matched = append(matched, dept)
				break
			}
		}
	}
	if len(matched) == 0 {
		matched = []string{"General Medicine"}
	}

	severity := domain.SeverityLow
	for _, kw := range redFlagKeywords {
		if strings.Contains(lower, kw) {
			severity = domain.SeverityHigh
			break
		}
	}

	recommendation := "Book an appointment with the suggested department for an examination."
	if severity == domain.SeverityHigh {
		recommendation = "These symptoms may be urgent. Seek medical attention promptly."
	}

	return &domain.TriageResult{
		Departments:    matched,
		Severity:       severity,
		Recommendation: recommendation,
		Source:         "deterministic",
	}
}

// offlineReply is the assistant's answer when the LLM is not configured
// or unreachable: point the user at the deterministic features.
func offlineReply(input string) *ChatReply {
	var b strings.Builder
	b.WriteString("The AI assistant is not available right now, but scheduling still works.\n")
	b.WriteString("Things you can do:\n")
	b.WriteString("  /slots        check free appointment slots per department\n")
	b.WriteString("  /book         book an appointment\n")
	b.WriteString("  /departments  list clinic departments\n")
	b.WriteString("  /triage       get a department suggestion for your symptoms\n")

	if t := DeterministicTriage(input); len(t.Departments) > 0 && t.Departments[0] != "General Medicine" {
		b.WriteString("\nBased on what you wrote, " + strings.Join(t.Departments, ", ") + " may be a good fit.\n")
	}

	return &ChatReply{Text: b.String(), Source: "deterministic"}
}
