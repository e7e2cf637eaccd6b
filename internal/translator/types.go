package translator

import (
	"context"
	"errors"
	"time"
)

// ErrEmptyResponse is returned when a backend answers without any text.
var ErrEmptyResponse = errors.New("empty translation response")

// Call is one translation request in the backend's own language dialect.
type Call struct {
	// Vendor selects the upstream service for backends that front several
	// vendors (the gateway) or a model for LLM backends. Empty means default.
	Vendor string `json:"vendor,omitempty"`
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
	// Timeout is forwarded to backends that accept an upstream timeout.
	Timeout time.Duration `json:"timeout,omitempty"`
}

// Backend translates one term through one external service.
type Backend interface {
	Name() string
	Translate(ctx context.Context, call Call) (string, error)
}
