package llm

import "errors"

var (
	// ErrNotConfigured indicates Azure OpenAI credentials are missing.
	ErrNotConfigured = errors.New("azure openai not configured")

	// ErrUnavailable indicates the Azure OpenAI endpoint is unreachable.
	ErrUnavailable = errors.New("azure openai endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
