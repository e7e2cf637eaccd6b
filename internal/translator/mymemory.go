package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultMyMemoryURL = "https://api.mymemory.translated.net/get"

// MyMemoryClient calls the public MyMemory translation memory API.
type MyMemoryClient struct {
	email   string
	baseURL string
	client  *http.Client
}

// NewMyMemoryClient builds a client. email raises the daily quota when set.
func NewMyMemoryClient(email string) *MyMemoryClient {
	return &MyMemoryClient{
		email:   email,
		baseURL: defaultMyMemoryURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *MyMemoryClient) Name() string {
	return "mymemory"
}

func (c *MyMemoryClient) Translate(ctx context.Context, call Call) (string, error) {
	q := url.Values{}
	q.Set("q", call.Text)
	q.Set("langpair", call.Source+"|"+call.Target)
	if c.email != "" {
		q.Set("de", c.email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var body struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		// MyMemory sends the status as a number or as a quoted number.
		ResponseStatus  any    `json:"responseStatus"`
		ResponseDetails string `json:"responseDetails"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if status := myMemoryStatus(body.ResponseStatus); status != http.StatusOK {
		return "", fmt.Errorf("API error: %s (%d)", body.ResponseDetails, status)
	}
	if body.ResponseData.TranslatedText == "" {
		return "", ErrEmptyResponse
	}
	return body.ResponseData.TranslatedText, nil
}

func myMemoryStatus(v any) int {
	switch s := v.(type) {
	case float64:
		return int(s)
	case string:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
