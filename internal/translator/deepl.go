package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultDeepLURL = "https://api-free.deepl.com/v2/translate"

// DeepLClient calls the DeepL REST API. Codes are expected in DeepL's upper
// case dialect.
type DeepLClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewDeepLClient builds a client. An empty baseURL selects the free API.
func NewDeepLClient(apiKey, baseURL string) *DeepLClient {
	if baseURL == "" {
		baseURL = defaultDeepLURL
	}
	return &DeepLClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: time.Minute},
	}
}

func (c *DeepLClient) Name() string {
	return "deepl"
}

func (c *DeepLClient) Translate(ctx context.Context, call Call) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("DeepL API key not configured")
	}

	form := url.Values{}
	form.Add("text", call.Text)
	form.Set("target_lang", call.Target)
	if call.Source != "" && !strings.EqualFold(call.Source, "auto") {
		// DeepL only accepts the bare language as source (EN, PT, ...).
		src, _, _ := strings.Cut(call.Source, "-")
		form.Set("source_lang", src)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("DeepL API request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DeepL API error (status %d): %s", resp.StatusCode, string(body))
	}

	var out struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(out.Translations) == 0 {
		return "", ErrEmptyResponse
	}
	return out.Translations[0].Text, nil
}
