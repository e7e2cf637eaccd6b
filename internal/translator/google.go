package translator

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleClient calls the Google Cloud Translation API.
type GoogleClient struct {
	opts []option.ClientOption
}

// NewGoogleClient builds a client. credentials is an optional path to a
// service-account file; extra options are appended after it.
func NewGoogleClient(credentials string, extra ...option.ClientOption) *GoogleClient {
	var opts []option.ClientOption
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}
	opts = append(opts, extra...)
	return &GoogleClient{opts: opts}
}

func (c *GoogleClient) Name() string {
	return "google"
}

func (c *GoogleClient) Translate(ctx context.Context, call Call) (string, error) {
	target, err := language.Parse(call.Target)
	if err != nil {
		return "", fmt.Errorf("invalid target language: %w", err)
	}

	opts := &translate.Options{Format: translate.Text}
	if call.Source != "" && call.Source != "auto" {
		source, err := language.Parse(call.Source)
		if err != nil {
			return "", fmt.Errorf("invalid source language: %w", err)
		}
		opts.Source = source
	}

	client, err := translate.NewClient(ctx, c.opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	translations, err := client.Translate(ctx, []string{call.Text}, target, opts)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", ErrEmptyResponse
	}
	return translations[0].Text, nil
}
