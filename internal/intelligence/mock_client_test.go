package intelligence

import (
	"context"

	"github.com/tuanvule/clinicli/internal/llm"
)

// mockLLMClient returns a canned response or error for both call shapes.
// Stream replays the response in fixed-size chunks; streamErr, when set,
// is delivered as an Err chunk after streamErrAfter text chunks.
type mockLLMClient struct {
	response       string
	err            error
	streamErr      error
	streamErrAfter int

	completeCalls int
	streamCalls   int
	lastRequest   llm.ChatRequest
}

func (m *mockLLMClient) Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	m.completeCalls++
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.ChatResponse{Text: m.response, Model: "mock"}, nil
}

func (m *mockLLMClient) Stream(ctx context.Context, req llm.ChatRequest) (<-chan llm.Chunk, error) {
	m.streamCalls++
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}

	out := make(chan llm.Chunk)
	go func() {
		defer close(out)
		sent := 0
		for _, r := range m.response {
			if m.streamErr != nil && sent >= m.streamErrAfter {
				out <- llm.Chunk{Err: m.streamErr}
				return
			}
			out <- llm.Chunk{Text: string(r)}
			sent++
		}
		if m.streamErr != nil {
			out <- llm.Chunk{Err: m.streamErr}
			return
		}
		out <- llm.Chunk{Done: true}
	}()
	return out, nil
}
