package formatter

import (
	"strings"

	"github.com/tuanvule/clinicli/internal/domain"
)

// FormatTriage renders a triage result with severity indicator and
// recommended departments.
func FormatTriage(result *domain.TriageResult) string {
	var b strings.Builder

	b.WriteString(Header("Triage assessment"))
	b.WriteString("\n")
	b.WriteString("  " + SeverityIndicator(result.Severity) + "\n\n")

	b.WriteString(Bold("Recommended departments") + "\n")
	for _, d := range result.Departments {
		b.WriteString("  " + StyleBlue.Render("→") + " " + d + "\n")
	}

	if len(result.PossibleConditions) > 0 {
		b.WriteString("\n" + Bold("Possible conditions") + "\n")
		for _, c := range result.PossibleConditions {
			b.WriteString("  " + Dim("·") + " " + c + "\n")
		}
	}

	if result.Recommendation != "" {
		b.WriteString("\n" + Bold("Recommendation") + "\n")
		b.WriteString("  " + result.Recommendation + "\n")
	}

	if result.Source == "deterministic" {
		b.WriteString("\n" + Dim("Assessed offline by keyword matching. Consult a clinician for a proper evaluation.") + "\n")
	} else {
		b.WriteString("\n" + Dim("This is not a medical diagnosis. Consult a clinician for a proper evaluation.") + "\n")
	}

	return b.String()
}
