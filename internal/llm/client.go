package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Message is a single chat-completions message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest holds the parameters for a chat-completion call.
type ChatRequest struct {
	Task        TaskType
	Messages    []Message
	Temperature *float64 // nil uses task default
	MaxTokens   *int     // nil uses task default
}

// ChatResponse holds the result of a non-streamed chat-completion call.
type ChatResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Chunk is one streamed piece of a chat-completion response.
// Text carries the next delta; Done marks the end of the stream.
type Chunk struct {
	Text string
	Done bool
	Err  error
}

// Client provides access to an Azure OpenAI chat deployment.
type Client interface {
	// Complete sends the messages and returns the full response text.
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Stream sends the messages and returns a channel of response deltas.
	// The channel is closed after a Done or Err chunk.
	Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, error)
}

// azureClient implements Client against the Azure OpenAI REST API.
type azureClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewAzureClient creates a Client for the configured Azure OpenAI deployment.
func NewAzureClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &azureClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// azureChatRequest is the JSON body sent to the chat/completions endpoint.
type azureChatRequest struct {
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream,omitempty"`
}

// azureChatResponse is the non-streamed response body.
type azureChatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// azureStreamEvent is one decoded SSE "data:" payload.
type azureStreamEvent struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func (c *azureClient) url() string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.Deployment, c.cfg.APIVersion)
}

func (c *azureClient) buildBody(req ChatRequest, stream bool) azureChatRequest {
	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}
	return azureChatRequest{
		Messages:    req.Messages,
		Temperature: temp,
		MaxTokens:   maxTok,
		Stream:      stream,
	}
}

func (c *azureClient) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if !c.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body := c.buildBody(req, false)

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doComplete(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Task:       req.Task,
				Deployment: c.cfg.Deployment,
				LatencyMs:  latency,
				Success:    true,
			})
			return &ChatResponse{
				Text:      resp.text(),
				Model:     resp.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout.
		if ctx.Err() != nil {
			break
		}
	}

	err := classifyError(ctx, lastErr)
	c.observer.OnCallComplete(CallEvent{
		Task:       req.Task,
		Deployment: c.cfg.Deployment,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    false,
		ErrorCode:  errorCode(err),
	})
	return nil, err
}

func (r *azureChatResponse) text() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

func (c *azureClient) doComplete(ctx context.Context, body azureChatRequest) (*azureChatResponse, error) {
	httpResp, err := c.post(ctx, body)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("azure openai returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp azureChatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (c *azureClient) post(ctx context.Context, body azureChatRequest) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.cfg.APIKey)

	return c.http.Do(httpReq)
}

// Stream opens a server-sent-events response and forwards content deltas.
// Connection errors before the first byte are retried like Complete;
// errors after streaming has begun surface as an Err chunk.
func (c *azureClient) Stream(ctx context.Context, req ChatRequest) (<-chan Chunk, error) {
	if !c.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)

	body := c.buildBody(req, true)

	var httpResp *http.Response
	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.post(ctx, body)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("azure openai returned status %d: %s", resp.StatusCode, string(respBody))
			if ctx.Err() != nil {
				break
			}
			continue
		}
		httpResp = resp
		break
	}

	if httpResp == nil {
		cancel()
		err := classifyError(ctx, lastErr)
		c.observer.OnCallComplete(CallEvent{
			Task:       req.Task,
			Deployment: c.cfg.Deployment,
			LatencyMs:  time.Since(start).Milliseconds(),
			Streamed:   true,
			Success:    false,
			ErrorCode:  errorCode(err),
		})
		return nil, err
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		defer cancel()
		defer httpResp.Body.Close()

		err := c.scanStream(ctx, httpResp.Body, out)
		success := err == nil
		if !success {
			out <- Chunk{Err: classifyError(ctx, err)}
		} else {
			out <- Chunk{Done: true}
		}
		c.observer.OnCallComplete(CallEvent{
			Task:       req.Task,
			Deployment: c.cfg.Deployment,
			LatencyMs:  time.Since(start).Milliseconds(),
			Streamed:   true,
			Success:    success,
			ErrorCode:  errorCode(classifyError(ctx, err)),
		})
	}()
	return out, nil
}

// scanStream reads SSE lines of the form "data: {json}" until the
// "[DONE]" marker, sending each non-empty content delta to out.
func (c *azureClient) scanStream(ctx context.Context, r io.Reader, out chan<- Chunk) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			return nil
		}

		var event azureStreamEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			// Skip malformed keep-alive or annotation frames.
			continue
		}
		for _, choice := range event.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			select {
			case out <- Chunk{Text: choice.Delta.Content}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}
	// Stream ended without [DONE]; treat as complete.
	return nil
}

func classifyError(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(ctx.Err(), context.Canceled):
		// Caller cancellation is not a timeout.
		return context.Canceled
	case ctx.Err() != nil:
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrNotConfigured):
		return "NOT_CONFIGURED"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
