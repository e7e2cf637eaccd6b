// Package compare runs one term through several engines and reports each
// engine's outcome as it arrives.
package compare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Status is the lifecycle stage of a Result.
type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the outcome of one engine for one request.
type Result struct {
	EngineID       string        `json:"engine_id"`
	Engine         string        `json:"engine"`
	EngineZh       string        `json:"engine_zh"`
	SourceLang     string        `json:"source_lang"`
	TargetLang     string        `json:"target_lang"`
	SourceText     string        `json:"source_text"`
	TranslatedText string        `json:"translated_text"`
	Success        bool          `json:"success"`
	ErrorMessage   string        `json:"error_message,omitempty"`
	Elapsed        time.Duration `json:"elapsed"`
	Status         Status        `json:"status"`
}

// Done reports whether the result reached a terminal status.
func (r Result) Done() bool {
	return r.Status == StatusSuccess || r.Status == StatusError
}

type summaryEntry struct {
	Engine      string `json:"engine"`
	EngineZh    string `json:"engine_zh"`
	Translation string `json:"translation"`
	Time        string `json:"time"`
}

// Summary renders the successful results as an indented JSON array of
// {engine, engine_zh, translation, time}. Non-ASCII text is kept as is.
func Summary(results []Result) string {
	entries := make([]summaryEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, summaryEntry{
			Engine:      r.Engine,
			EngineZh:    r.EngineZh,
			Translation: r.TranslatedText,
			Time:        fmt.Sprintf("%.2fs", r.Elapsed.Seconds()),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return ""
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
