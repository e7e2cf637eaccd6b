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

const DefaultOpenRouterURL = "https://openrouter.ai/api/v1"

var DefaultOpenRouterModels = []string{
	"google/gemini-2.0-flash-exp:free",
	"qwen/qwen2.5-72b-instruct:free",
	"mistralai/mistral-nemo:free",
}

// OpenRouterClient asks a hosted chat model for a term translation. The first
// configured model is used unless the call names one.
type OpenRouterClient struct {
	apiKey  string
	baseURL string
	models  []string
	client  *http.Client
}

func NewOpenRouterClient(apiKey, baseURL string, models []string) *OpenRouterClient {
	if baseURL == "" {
		baseURL = DefaultOpenRouterURL
	}
	if len(models) == 0 {
		models = DefaultOpenRouterModels
	}
	return &OpenRouterClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		models:  models,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *OpenRouterClient) Name() string {
	return "openrouter"
}

func (c *OpenRouterClient) Models() []string {
	return c.models
}

func (c *OpenRouterClient) Translate(ctx context.Context, call Call) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("OpenRouter API key required")
	}

	model := call.Vendor
	if model == "" {
		model = c.models[0]
	}

	payload, err := json.Marshal(map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": termPrompt(call)},
		},
		"max_tokens": 256,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("X-Title", "mtcompare")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return postprocess.Term(out.Choices[0].Message.Content, call.Text), nil
}
