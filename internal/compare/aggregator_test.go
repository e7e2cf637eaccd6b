package compare

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/valpere/mtcompare/internal/engine"
)

type step struct {
	snap    Snapshot
	summary string
}

func collect(a *Aggregator, req Request) []step {
	var steps []step
	for snap, summary := range a.Stream(context.Background(), req) {
		steps = append(steps, step{snap, summary})
	}
	return steps
}

func newAggregator(integrations ...engine.Integration) *Aggregator {
	return NewAggregator(engine.NewRegistry(integrations...), Options{})
}

func TestStream_PairCount(t *testing.T) {
	a := newAggregator(
		bind(t, "google", fixed("google", "區塊鏈")),
		bind(t, "bing", fixed("gateway", "區塊鍊")),
		bind(t, "mymemory", fixed("mymemory", "區塊鏈")),
	)

	tests := []struct {
		engines []string
		known   int
	}{
		{nil, 0},
		{[]string{"google"}, 1},
		{[]string{"google", "bing"}, 2},
		{[]string{"google", "nope", "bing", "mymemory"}, 3},
	}
	for _, tt := range tests {
		steps := collect(a, Request{Text: "blockchain", Source: "en", Target: "zh-TW", Engines: tt.engines})
		if len(steps) != 2*tt.known+2 {
			t.Errorf("engines %v: expected %d pairs, got %d", tt.engines, 2*tt.known+2, len(steps))
		}
	}
}

func TestStream_UnknownIDsNeverEmitted(t *testing.T) {
	bing := fixed("gateway", "B")
	google := fixed("google", "G")
	a := newAggregator(bind(t, "google", google), bind(t, "bing", bing))

	steps := collect(a, Request{Text: "blockchain", Source: "en", Target: "zh-TW", Engines: []string{"nope", "bing", "zzz", "google"}})
	if len(steps) != 6 {
		t.Fatalf("expected 6 pairs, got %d", len(steps))
	}

	want := []string{"bing", "google"}
	for i, s := range steps {
		var ids []string
		for _, r := range s.snap.Results {
			ids = append(ids, r.EngineID)
		}
		if !slices.Equal(ids, want) {
			t.Errorf("step %d: engine ids = %v, want %v", i, ids, want)
		}
	}

	final := steps[len(steps)-1].snap.Results
	if final[0].TranslatedText != "B" || final[1].TranslatedText != "G" {
		t.Errorf("results landed on the wrong engines: bing=%q google=%q", final[0].TranslatedText, final[1].TranslatedText)
	}
	if len(bing.calls) != 1 || len(google.calls) != 1 {
		t.Errorf("expected one call per known engine, got bing=%d google=%d", len(bing.calls), len(google.calls))
	}
}

func TestStream_BlankInput(t *testing.T) {
	google := fixed("google", "x")
	a := newAggregator(bind(t, "google", google))

	for _, text := range []string{"", "   ", "\t\n"} {
		steps := collect(a, Request{Text: text, Source: "auto", Target: "en", Engines: []string{"google"}})
		if len(steps) != 1 {
			t.Fatalf("%q: expected one pair, got %d", text, len(steps))
		}
		if steps[0].snap.Message != MsgEmptyText {
			t.Errorf("unexpected message %q", steps[0].snap.Message)
		}
		if steps[0].summary != "" || len(steps[0].snap.Results) != 0 {
			t.Errorf("expected no results and empty summary, got %+v %q", steps[0].snap, steps[0].summary)
		}
	}
	if len(google.calls) != 0 {
		t.Errorf("no engine should be called, got %d calls", len(google.calls))
	}
}

func TestStream_BlockchainScenario(t *testing.T) {
	a := newAggregator(
		bind(t, "google", fixed("google", "區塊鏈")),
		bind(t, "bing", fixed("gateway", "區塊鍊")),
	)

	steps := collect(a, Request{Text: "blockchain", Source: "en", Target: "zh-TW", Engines: []string{"google", "bing"}})
	if len(steps) != 6 {
		t.Fatalf("expected 6 pairs, got %d", len(steps))
	}

	final := steps[len(steps)-1]
	for _, r := range final.snap.Results {
		if r.Status != StatusSuccess {
			t.Errorf("%s: expected success, got %+v", r.EngineID, r)
		}
	}
	if !final.snap.Finished() || final.snap.Succeeded() != 2 {
		t.Errorf("expected finished snapshot with 2 successes, got %+v", final.snap)
	}

	var entries []map[string]string
	if err := json.Unmarshal([]byte(final.summary), &entries); err != nil {
		t.Fatalf("summary is not JSON: %v\n%s", err, final.summary)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	want := []struct{ engine, zh, text string }{
		{"Google Translate", "谷歌翻譯", "區塊鏈"},
		{"Microsoft Bing", "微軟必應翻譯", "區塊鍊"},
	}
	for i, w := range want {
		e := entries[i]
		if e["engine"] != w.engine || e["engine_zh"] != w.zh || e["translation"] != w.text {
			t.Errorf("entry %d = %v, want %+v", i, e, w)
		}
		if !strings.HasSuffix(e["time"], "s") {
			t.Errorf("entry %d: unexpected time %q", i, e["time"])
		}
	}
	if !strings.Contains(final.summary, "區塊鍊") {
		t.Error("summary should keep non-ASCII text unescaped")
	}
}

func TestStream_StepStates(t *testing.T) {
	a := newAggregator(
		bind(t, "google", fixed("google", "區塊鏈")),
		bind(t, "bing", failing("gateway", errors.New("blocked"))),
	)

	steps := collect(a, Request{Text: " blockchain ", Source: "en", Target: "zh-TW", Engines: []string{"google", "bing"}})

	wantCurrent := []string{
		MarkerStarting,
		"Google Translate (谷歌翻譯)",
		"Google Translate",
		"Microsoft Bing (微軟必應翻譯)",
		"",
		"",
	}
	wantStatus := [][]Status{
		{StatusPending, StatusPending},
		{StatusRunning, StatusPending},
		{StatusSuccess, StatusPending},
		{StatusSuccess, StatusRunning},
		{StatusSuccess, StatusError},
		{StatusSuccess, StatusError},
	}
	wantSummaryEmpty := []bool{true, true, false, true, false, false}

	if len(steps) != len(wantCurrent) {
		t.Fatalf("expected %d pairs, got %d", len(wantCurrent), len(steps))
	}
	for i, s := range steps {
		if s.snap.Current != wantCurrent[i] {
			t.Errorf("step %d: current = %q, want %q", i, s.snap.Current, wantCurrent[i])
		}
		for j, r := range s.snap.Results {
			if r.Status != wantStatus[i][j] {
				t.Errorf("step %d result %d: status = %s, want %s", i, j, r.Status, wantStatus[i][j])
			}
			if r.SourceText != "blockchain" {
				t.Errorf("step %d: source text not trimmed: %q", i, r.SourceText)
			}
		}
		if (s.summary == "") != wantSummaryEmpty[i] {
			t.Errorf("step %d: unexpected summary %q", i, s.summary)
		}
	}

	if steps[0].snap.RunID == "" || steps[0].snap.RunID != steps[5].snap.RunID {
		t.Error("expected one run id across the run")
	}
}

func TestStream_TimeoutDoesNotAbort(t *testing.T) {
	bing := failing("gateway", context.DeadlineExceeded)
	mymemory := fixed("mymemory", "區塊鏈")
	a := newAggregator(
		bind(t, "google", fixed("google", "區塊鏈")),
		bind(t, "bing", bing),
		bind(t, "mymemory", mymemory),
	)

	steps := collect(a, Request{Text: "blockchain", Source: "en", Target: "zh-TW", Engines: []string{"google", "bing", "mymemory"}})
	final := steps[len(steps)-1].snap

	got := final.Results[1]
	if got.Status != StatusError {
		t.Fatalf("expected bing to fail, got %+v", got)
	}
	if got.ErrorMessage == "" || len([]rune(got.ErrorMessage)) > MaxErrorLength {
		t.Errorf("unexpected error message %q", got.ErrorMessage)
	}
	if len(mymemory.calls) != 1 || final.Results[2].Status != StatusSuccess {
		t.Errorf("expected the remaining engine to run, got %+v", final.Results[2])
	}
	if final.Succeeded() != 2 || final.Completed() != 3 {
		t.Errorf("expected 2/3 successful, got %d/%d", final.Succeeded(), final.Completed())
	}
}

func TestStream_StopConsumingStopsCalls(t *testing.T) {
	google := fixed("google", "區塊鏈")
	bing := fixed("gateway", "區塊鍊")
	a := newAggregator(bind(t, "google", google), bind(t, "bing", bing))

	n := 0
	for range a.Stream(context.Background(), Request{Text: "blockchain", Source: "en", Target: "zh-TW", Engines: []string{"google", "bing"}}) {
		n++
		if n == 3 {
			break
		}
	}
	if len(google.calls) != 1 || len(bing.calls) != 0 {
		t.Errorf("expected only google to be called, got google=%d bing=%d", len(google.calls), len(bing.calls))
	}
}

func TestStream_OneShot(t *testing.T) {
	google := fixed("google", "區塊鏈")
	a := newAggregator(bind(t, "google", google))

	seq := a.Stream(context.Background(), Request{Text: "blockchain", Source: "en", Target: "zh-TW", Engines: []string{"google"}})
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != 4 || second != 0 {
		t.Errorf("expected 4 then 0 pairs, got %d then %d", first, second)
	}
	if len(google.calls) != 1 {
		t.Errorf("expected a single backend call, got %d", len(google.calls))
	}
}

func TestStream_SnapshotsAreIndependent(t *testing.T) {
	a := newAggregator(bind(t, "google", fixed("google", "區塊鏈")))

	steps := collect(a, Request{Text: "blockchain", Source: "en", Target: "zh-TW", Engines: []string{"google"}})
	if steps[0].snap.Results[0].Status != StatusPending {
		t.Errorf("earlier snapshot was mutated: %+v", steps[0].snap.Results[0])
	}
}

func TestStream_Pace(t *testing.T) {
	a := NewAggregator(engine.NewRegistry(
		bind(t, "google", fixed("google", "a")),
		bind(t, "bing", fixed("gateway", "b")),
	), Options{Pace: 30 * time.Millisecond})

	start := time.Now()
	collect(a, Request{Text: "blockchain", Source: "en", Target: "zh-TW", Engines: []string{"google", "bing"}})
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("expected one pause between engines, took %v", elapsed)
	}
}

func TestMessage(t *testing.T) {
	var steps []step
	for snap, summary := range Message(MsgNoEngines) {
		steps = append(steps, step{snap, summary})
	}
	if len(steps) != 1 || steps[0].snap.Message != MsgNoEngines || steps[0].summary != "" {
		t.Errorf("unexpected message sequence %+v", steps)
	}
}

func TestSummary(t *testing.T) {
	results := []Result{
		{Engine: "Google Translate", EngineZh: "谷歌翻譯", TranslatedText: "R&D <lab>", Success: true, Elapsed: 1500 * time.Millisecond, Status: StatusSuccess},
		{Engine: "Microsoft Bing", EngineZh: "微軟必應翻譯", Status: StatusError, ErrorMessage: "blocked"},
	}

	want := `[
  {
    "engine": "Google Translate",
    "engine_zh": "谷歌翻譯",
    "translation": "R&D <lab>",
    "time": "1.50s"
  }
]`
	if got := Summary(results); got != want {
		t.Errorf("Summary() =\n%s\nwant\n%s", got, want)
	}
	if got := Summary(nil); got != "[]" {
		t.Errorf("Summary(nil) = %q, want []", got)
	}
}
