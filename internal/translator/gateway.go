package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// GatewayClient talks to a translation gateway that fronts several free web
// translators (bing, alibaba, sogou, youdao, ...) behind one endpoint. The
// vendor is chosen per call.
type GatewayClient struct {
	baseURL string
	client  *http.Client
}

// NewGatewayClient builds a client for the gateway at baseURL. Deadlines come
// from the caller's context.
func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (c *GatewayClient) Name() string {
	return "gateway"
}

type gatewayRequest struct {
	QueryText    string  `json:"query_text"`
	Translator   string  `json:"translator"`
	FromLanguage string  `json:"from_language"`
	ToLanguage   string  `json:"to_language"`
	Timeout      float64 `json:"timeout,omitempty"`
}

type gatewayResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

func (c *GatewayClient) Translate(ctx context.Context, call Call) (string, error) {
	if call.Vendor == "" {
		return "", fmt.Errorf("gateway vendor is required")
	}

	payload, err := json.Marshal(gatewayRequest{
		QueryText:    call.Text,
		Translator:   call.Vendor,
		FromLanguage: call.Source,
		ToLanguage:   call.Target,
		Timeout:      call.Timeout.Seconds(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
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
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%s returned status %d: %s", call.Vendor, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("%s: %s", call.Vendor, out.Error)
	}
	return out.Text, nil
}
