package render

import (
	"strings"
	"testing"
	"time"

	"github.com/valpere/mtcompare/internal/compare"
)

func sampleResults() []compare.Result {
	return []compare.Result{
		{Engine: "Google Translate", EngineZh: "谷歌翻譯", Status: compare.StatusSuccess, Success: true, TranslatedText: "區塊鏈", Elapsed: 1234 * time.Millisecond},
		{Engine: "Microsoft Bing", EngineZh: "微軟必應翻譯", Status: compare.StatusError},
		{Engine: "Alibaba Translate", EngineZh: "阿里翻譯", Status: compare.StatusError, ErrorMessage: "quota exceeded"},
		{Engine: "Sogou Translate", EngineZh: "搜狗翻譯", Status: compare.StatusRunning},
		{Engine: "Youdao Translate", EngineZh: "有道翻譯", Status: compare.StatusPending},
	}
}

func TestHTML_InProgress(t *testing.T) {
	out, err := HTML(compare.Snapshot{Results: sampleResults(), Current: "Sogou Translate (搜狗翻譯)"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"Translating Term... 術語翻譯中...",
		"Processing: Sogou Translate (搜狗翻譯) (3/5 completed)",
		"Term Translation Results 術語翻譯結果",
		`<div class="mt-item success">`,
		"區塊鏈",
		"⏱️ 1.23s",
		TextUnavailable,
		"quota exceeded",
		`<span class="spinner"></span>`,
		TextTranslating,
		TextWaiting,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(got, "Complete!") {
		t.Error("in-progress panel should not show the completion banner")
	}
}

func TestHTML_Complete(t *testing.T) {
	results := sampleResults()[:3]
	out, err := HTML(compare.Snapshot{Results: results})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "1/3 engines successful") {
		t.Errorf("expected completion banner, got:\n%s", out)
	}
}

func TestHTML_EscapesTranslations(t *testing.T) {
	out, err := HTML(compare.Snapshot{Results: []compare.Result{
		{Engine: "Google Translate", EngineZh: "谷歌翻譯", Status: compare.StatusSuccess, Success: true, TranslatedText: "<script>alert(1)</script>"},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "<script>alert") {
		t.Error("translated text must be escaped")
	}
}

func TestHTML_Message(t *testing.T) {
	out, err := HTML(compare.Snapshot{Message: compare.MsgEmptyText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), compare.MsgEmptyText) {
		t.Errorf("expected message, got %s", out)
	}
	if strings.Contains(string(out), "mt-container") {
		t.Error("message snapshot should not render the results panel")
	}
}

func TestTerminal(t *testing.T) {
	got := Terminal(compare.Snapshot{Results: sampleResults(), Current: "Sogou Translate (搜狗翻譯)"}, 0)

	for _, want := range []string{
		"(3/5 completed)",
		"Google Translate",
		"區塊鏈",
		"1.23s",
		TextUnavailable,
		"quota exceeded",
		TextTranslating,
		TextWaiting,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected terminal output to contain %q\n%s", want, got)
		}
	}
}

func TestTerminal_Message(t *testing.T) {
	got := Terminal(compare.Snapshot{Message: compare.MsgNoEngines}, 80)
	if !strings.Contains(got, compare.MsgNoEngines) {
		t.Errorf("expected message, got %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	got := string(Markdown([]byte("**bold** [link](https://example.com)")))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("expected bold markup, got %s", got)
	}
	if !strings.Contains(got, `target="_blank"`) {
		t.Errorf("expected links to open in a new tab, got %s", got)
	}
}

func TestIntroAndTips(t *testing.T) {
	if !strings.Contains(string(Intro()), "多引擎術語翻譯比較工具") {
		t.Error("intro is missing the title")
	}
	if !strings.Contains(string(Tips()), "<ol>") {
		t.Error("tips should render as a numbered list")
	}
	text := IntroText()
	if strings.Contains(text, "<") || !strings.Contains(text, "terminology") {
		t.Errorf("unexpected plain intro %q", text)
	}
}
