package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/tuanvule/clinicli/internal/domain"
	"github.com/tuanvule/clinicli/internal/llm"
)

// TriageService suggests clinic departments for a symptom description.
type TriageService interface {
	// Analyze returns a structured triage result for the symptoms.
	// It never fails outright: when the LLM is unreachable or returns
	// unusable output, a deterministic keyword triage is returned.
	Analyze(ctx context.Context, symptoms string) (*domain.TriageResult, error)
}

type triageService struct {
	client llm.Client
}

// NewTriageService creates a TriageService backed by an LLM client.
func NewTriageService(client llm.Client) TriageService {
	return &triageService{client: client}
}

// triageLLMResponse is the JSON structure expected from the LLM.
type triageLLMResponse struct {
	Departments        []string `json:"departments"`
	PossibleConditions []string `json:"possible_conditions"`
	Severity           string   `json:"severity"`
	Recommendation     string   `json:"recommendation"`
}

func (s *triageService) Analyze(ctx context.Context, symptoms string) (*domain.TriageResult, error) {
	symptoms = strings.TrimSpace(symptoms)
	if symptoms == "" {
		return nil, fmt.Errorf("symptoms must not be empty")
	}

	resp, err := s.client.Complete(ctx, llm.ChatRequest{
		Task: llm.TaskTriage,
		Messages: []llm.Message{
			{Role: "system", Content: triageSystemPrompt},
			{Role: "user", Content: buildTriageUserPrompt(symptoms)},
		},
	})
	if err != nil {
		return DeterministicTriage(symptoms), nil
	}

	parsed, err := llm.ExtractJSON[triageLLMResponse](resp.Text, validateTriageResponse)
	if err != nil {
		return DeterministicTriage(symptoms), nil
	}

	result := &domain.TriageResult{
		Departments:        groundDepartments(parsed.Departments),
		PossibleConditions: parsed.PossibleConditions,
		Severity:           domain.Severity(strings.ToLower(parsed.Severity)),
		Recommendation:     parsed.Recommendation,
		Source:             "llm",
	}

	// A response whose departments were all hallucinated is not usable
	// on its own; borrow the keyword matcher's department suggestions.
	if len(result.Departments) == 0 {
		fallback := DeterministicTriage(symptoms)
		result.Departments = fallback.Departments
	}

	return result, nil
}

func validateTriageResponse(resp triageLLMResponse) error {
	if len(resp.Departments) == 0 {
		return fmt.Errorf("departments field is required")
	}
	sev := domain.Severity(strings.ToLower(resp.Severity))
	if !domain.ValidSeverities[sev] {
		return fmt.Errorf("severity must be low, medium or high, got %q", resp.Severity)
	}
	return nil
}

// groundDepartments keeps only departments that exist in the catalog,
// normalized to their display names. Hallucinated names are dropped.
func groundDepartments(names []string) []string {
	var out []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		dept, ok := domain.ResolveDepartment(name)
		if !ok || seen[dept.Name] {
			continue
		}
		seen[dept.Name] = true
		out = append(out, dept.Name)
	}
	return out
}
