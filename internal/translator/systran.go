package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	systranHost       = "api-systran-systran-translation-v1.p.rapidapi.com"
	defaultSystranURL = "https://" + systranHost + "/translation/text/translate"
)

// SystranClient calls Systran through RapidAPI.
type SystranClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSystranClient(apiKey string) *SystranClient {
	return &SystranClient{
		apiKey:  apiKey,
		baseURL: defaultSystranURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *SystranClient) Name() string {
	return "systran"
}

func (c *SystranClient) Translate(ctx context.Context, call Call) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("Systran API key required")
	}

	payload, err := json.Marshal(map[string]any{
		"text":   []string{call.Text},
		"source": call.Source,
		"target": call.Target,
		"format": "text",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-RapidAPI-Key", c.apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", systranHost)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		Outputs []struct {
			Output string `json:"output"`
		} `json:"outputs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(out.Outputs) == 0 || out.Outputs[0].Output == "" {
		return "", ErrEmptyResponse
	}
	return out.Outputs[0].Output, nil
}
