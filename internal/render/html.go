// Package render turns comparison snapshots into something a person can
// read: an HTML status panel for the web UI and styled text for terminals.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/valpere/mtcompare/internal/compare"
)

// Bilingual status texts.
const (
	TextUnavailable = "Service unavailable 服務暫時無法使用"
	TextWaiting     = "Waiting... 等待中..."
	TextTranslating = "Translating... 翻譯中..."
)

//go:embed templates/status.html
var templateFS embed.FS

var statusTmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"icon":      htmlIcon,
	"seconds":   Seconds,
	"errorText": ErrorText,
}).ParseFS(templateFS, "templates/status.html"))

type statusView struct {
	Current     string
	Results     []compare.Result
	Completed   int
	Total       int
	Succeeded   int
	Finished    bool
	Waiting     string
	Translating string
}

// HTML renders the status panel for s. A snapshot carrying a Message renders
// only that message.
func HTML(s compare.Snapshot) (template.HTML, error) {
	var buf bytes.Buffer
	var err error
	if s.Message != "" {
		err = statusTmpl.ExecuteTemplate(&buf, "message", s.Message)
	} else {
		err = statusTmpl.ExecuteTemplate(&buf, "status", statusView{
			Current:     s.Current,
			Results:     s.Results,
			Completed:   s.Completed(),
			Total:       s.Total(),
			Succeeded:   s.Succeeded(),
			Finished:    s.Finished(),
			Waiting:     TextWaiting,
			Translating: TextTranslating,
		})
	}
	if err != nil {
		return "", fmt.Errorf("render status: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Seconds formats d the way results show elapsed time.
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// ErrorText is the message shown for a failed result.
func ErrorText(msg string) string {
	if msg == "" {
		return TextUnavailable
	}
	return msg
}

func htmlIcon(s compare.Status) template.HTML {
	switch s {
	case compare.StatusRunning:
		return `<span class="spinner"></span>`
	case compare.StatusSuccess:
		return `<span class="status-icon">✅</span>`
	case compare.StatusError:
		return `<span class="status-icon">❌</span>`
	}
	return `<span class="status-icon">⏳</span>`
}
