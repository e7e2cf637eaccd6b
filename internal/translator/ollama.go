package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/valpere/mtcompare/internal/postprocess"
)

const (
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama3.2"
)

// OllamaClient asks a local Ollama model for a term translation.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaClient(baseURL, model string) *OllamaClient {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	return &OllamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *OllamaClient) Name() string {
	return "ollama"
}

func (c *OllamaClient) Translate(ctx context.Context, call Call) (string, error) {
	model := call.Vendor
	if model == "" {
		model = c.model
	}

	payload, err := json.Marshal(map[string]any{
		"model":  model,
		"prompt": termPrompt(call),
		"stream": false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return postprocess.Term(out.Response, call.Text), nil
}

// termPrompt asks for the bare term; LLMs otherwise tend to explain it.
func termPrompt(call Call) string {
	source := call.Source
	if source == "" || source == "auto" {
		source = "the detected language"
	}
	return fmt.Sprintf(`You are a terminologist. Translate the following term from %s to %s.
Respond with the standard translation of the term only: no explanation, no alternatives, no quotes.

Term: %s`, source, call.Target, call.Text)
}
