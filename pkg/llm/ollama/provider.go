package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"cosmic-chat-be/pkg/llm"
)

// Config tunes the provider's network behavior and sampling defaults.
type Config struct {
	BaseURL       string
	ModelName     string
	Timeout       time.Duration // blocking call wall clock
	StreamTimeout time.Duration // streaming call wall clock
	MaxRetries    int           // retries after the first attempt, 5xx only
	RetryDelay    time.Duration

	// Sampling defaults; per-call llm.Option values override them.
	Temperature float64
	TopP        float64
	NumPredict  int
}

type OllamaProvider struct {
	cfg    Config
	client *http.Client
}

// Ensure OllamaProvider implements Provider
var _ llm.Provider = &OllamaProvider{}

func NewOllamaProvider(cfg Config) *OllamaProvider {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.StreamTimeout <= 0 {
		cfg.StreamTimeout = 120 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	defaults := llm.DefaultOptions()
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaults.Temperature
	}
	if cfg.TopP <= 0 {
		cfg.TopP = defaults.TopP
	}
	if cfg.NumPredict <= 0 {
		cfg.NumPredict = defaults.MaxTokens
	}
	return &OllamaProvider{
		cfg: cfg,
		// Timeouts are enforced per call via context so a streaming call can
		// outlive the blocking-call budget.
		client: &http.Client{},
	}
}

// --- Request/Response structs (Internal to this package) ---

type generateRequest struct {
	Model   string           `json:"model"`
	Prompt  string           `json:"prompt"`
	System  string           `json:"system,omitempty"`
	Stream  bool             `json:"stream"`
	Options *generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// --- Interface Implementation ---

func (o *OllamaProvider) Generate(ctx context.Context, turns []llm.Message, systemPrompt string, opts ...llm.Option) (string, error) {
	payload, err := o.buildPayload(turns, systemPrompt, false, opts)
	if err != nil {
		return "", llm.NewError(llm.KindGenerationFailed, "failed to generate response", err)
	}

	var lastErr error
	for attempt := 0; attempt <= o.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", llm.NewError(llm.KindGenerationFailed, "failed to generate response", ctx.Err())
			case <-time.After(o.cfg.RetryDelay):
			}
		}

		text, retryable, err := o.doGenerate(ctx, payload)
		if err == nil {
			return text, nil
		}
		if !retryable {
			return "", llm.NewError(llm.KindGenerationFailed, "failed to generate response", err)
		}
		lastErr = err
	}
	return "", llm.NewError(llm.KindGenerationFailed, "failed to generate response", lastErr)
}

// doGenerate performs one blocking request. retryable is true only for
// 5xx-class responses.
func (o *OllamaProvider) doGenerate(ctx context.Context, payload []byte) (string, bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	resp, err := o.post(callCtx, payload)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", true, fmt.Errorf("ollama error: status %d, body: %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("ollama error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", false, fmt.Errorf("unmarshal response: %w", err)
	}
	return out.Response, false, nil
}

func (o *OllamaProvider) GenerateStream(ctx context.Context, turns []llm.Message, systemPrompt string, onChunk llm.ChunkHandler, opts ...llm.Option) error {
	payload, err := o.buildPayload(turns, systemPrompt, true, opts)
	if err != nil {
		return llm.NewError(llm.KindStreamingFailed, "failed to stream response", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, o.cfg.StreamTimeout)
	defer cancel()

	resp, err := o.post(callCtx, payload)
	if err != nil {
		return o.wrapStreamErr(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return llm.NewError(llm.KindStreamingFailed, "failed to stream response",
			fmt.Errorf("ollama error: status %d, body: %s", resp.StatusCode, string(body)))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		// The scanner can hold lines that arrived before cancellation; they
		// must not reach onChunk once the caller has stopped the turn.
		select {
		case <-callCtx.Done():
			return o.wrapStreamErr(ctx, callCtx.Err())
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var chunk generateResponse
		if err := json.Unmarshal(line, &chunk); err != nil {
			log.Printf("[WARN] skipping malformed stream chunk: %s", string(line))
			continue
		}

		if chunk.Response != "" {
			onChunk(chunk.Response)
		}
		if chunk.Done {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return o.wrapStreamErr(ctx, err)
	}
	// Stream closed without done:true; the connection ending counts as
	// completion.
	return nil
}

func (o *OllamaProvider) wrapStreamErr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return llm.NewError(llm.KindCancelled, "generation cancelled", err)
	}
	return llm.NewError(llm.KindStreamingFailed, "failed to stream response", err)
}

func (o *OllamaProvider) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.cfg.BaseURL+"/api/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama error: status %d", resp.StatusCode)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	names := make([]string, len(tags.Models))
	for i, m := range tags.Models {
		names[i] = m.Name
	}
	return names, nil
}

func (o *OllamaProvider) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.cfg.BaseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// --- helpers ---

func (o *OllamaProvider) buildPayload(turns []llm.Message, systemPrompt string, stream bool, opts []llm.Option) ([]byte, error) {
	options := llm.Options{
		Temperature: o.cfg.Temperature,
		TopP:        o.cfg.TopP,
		MaxTokens:   o.cfg.NumPredict,
	}
	for _, opt := range opts {
		opt(&options)
	}

	model := o.cfg.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := generateRequest{
		Model:  model,
		Prompt: renderTurns(turns),
		System: systemPrompt,
		Stream: stream,
		Options: &generateOptions{
			Temperature: options.Temperature,
			TopP:        options.TopP,
			NumPredict:  options.MaxTokens,
		},
	}

	payload, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	return payload, nil
}

func (o *OllamaProvider) post(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.BaseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	return resp, nil
}

// renderTurns flattens the conversation into the plain-text prompt the
// /api/generate endpoint expects. System turns are dropped; the system prompt
// travels in its own request field.
func renderTurns(turns []llm.Message) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		if t.Role == "system" {
			continue
		}
		role := "User"
		if t.Role == "assistant" {
			role = "Assistant"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", role, t.Content))
	}
	return strings.Join(parts, "\n\n")
}
