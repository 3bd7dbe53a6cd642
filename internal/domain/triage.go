package domain

// TriageResult is the structured outcome of a symptom analysis:
// which departments to visit, what the symptoms may indicate, and
// how urgent the visit is.
type TriageResult struct {
	Departments        []string `json:"departments"`
	PossibleConditions []string `json:"possible_conditions"`
	Severity           Severity `json:"severity"`
	Recommendation     string   `json:"recommendation"`
	Source             string   `json:"source"` // "llm" or "deterministic"
}
