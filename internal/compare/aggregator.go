package compare

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/valpere/mtcompare/internal/engine"
)

// DefaultPace is the pause between two engines, long enough for a person to
// see each result land.
const DefaultPace = 300 * time.Millisecond

// User-facing messages and markers.
const (
	MsgEmptyText   = "Please enter a term to translate. 請輸入要翻譯的術語。"
	MsgNoEngines   = "Please select at least one engine! 請選擇至少一個引擎！"
	MarkerStarting = "Starting... 開始翻譯..."
)

// Request is one comparison.
type Request struct {
	Text    string
	Source  string
	Target  string
	Engines []string
}

// Snapshot is the state of a comparison at one step.
type Snapshot struct {
	RunID   string   `json:"run_id,omitempty"`
	Results []Result `json:"results"`
	// Current names what is being processed; empty once nothing is.
	Current string `json:"current,omitempty"`
	// Message replaces the results when the request could not start.
	Message string `json:"message,omitempty"`
}

// Total is the number of engines in the comparison.
func (s Snapshot) Total() int {
	return len(s.Results)
}

// Completed counts results in a terminal status.
func (s Snapshot) Completed() int {
	n := 0
	for _, r := range s.Results {
		if r.Done() {
			n++
		}
	}
	return n
}

// Succeeded counts successful results.
func (s Snapshot) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.Status == StatusSuccess {
			n++
		}
	}
	return n
}

// Finished reports whether every engine has completed and nothing is in progress.
func (s Snapshot) Finished() bool {
	return s.Message == "" && s.Current == "" && s.Total() > 0 && s.Completed() == s.Total()
}

// Options tune an Aggregator.
type Options struct {
	// Pace is the pause between engines. Zero disables it.
	Pace           time.Duration
	GatewayTimeout time.Duration
	Logger         zerolog.Logger
}

// DefaultOptions returns the options used by the CLI and web UI.
func DefaultOptions() Options {
	return Options{
		Pace:           DefaultPace,
		GatewayTimeout: DefaultGatewayTimeout,
		Logger:         zerolog.Nop(),
	}
}

// Aggregator runs a comparison engine by engine.
type Aggregator struct {
	registry *engine.Registry
	adapter  *Adapter
	opts     Options
}

func NewAggregator(registry *engine.Registry, opts Options) *Aggregator {
	return &Aggregator{
		registry: registry,
		adapter:  NewAdapter(registry, opts.GatewayTimeout),
		opts:     opts,
	}
}

// Adapter exposes the per-engine adapter used by the aggregator.
func (a *Aggregator) Adapter() *Adapter {
	return a.adapter
}

// Message returns a sequence holding a single snapshot that carries msg and an
// empty summary.
func Message(msg string) iter.Seq2[Snapshot, string] {
	return func(yield func(Snapshot, string) bool) {
		yield(Snapshot{Message: msg}, "")
	}
}

// Stream returns the steps of req as (snapshot, summary) pairs: one before any
// engine runs, two per known engine (running, then finished) and a final one.
// Engines run one at a time in request order; unknown ids are skipped. Breaking
// out of the range stops further engine calls. The sequence can be consumed
// once.
func (a *Aggregator) Stream(ctx context.Context, req Request) iter.Seq2[Snapshot, string] {
	var used atomic.Bool
	return func(yield func(Snapshot, string) bool) {
		if used.Swap(true) {
			return
		}

		text := strings.TrimSpace(req.Text)
		if text == "" {
			yield(Snapshot{Message: MsgEmptyText}, "")
			return
		}

		runID := uuid.NewString()
		log := a.opts.Logger.With().Str("run_id", runID).Logger()

		var engines []engine.Engine
		for _, id := range req.Engines {
			e, err := a.registry.Lookup(id)
			if err != nil {
				log.Debug().Str("engine", id).Msg("skipping unknown engine")
				continue
			}
			engines = append(engines, e)
		}

		results := make([]Result, len(engines))
		for i, e := range engines {
			results[i] = Result{
				EngineID:   e.ID,
				Engine:     e.Name,
				EngineZh:   e.NameZh,
				SourceLang: req.Source,
				TargetLang: req.Target,
				SourceText: text,
				Status:     StatusPending,
			}
		}

		snapshot := func(current string) Snapshot {
			return Snapshot{RunID: runID, Results: slices.Clone(results), Current: current}
		}

		log.Debug().Int("engines", len(engines)).Str("source", req.Source).Str("target", req.Target).Msg("comparison started")
		if !yield(snapshot(MarkerStarting), "") {
			return
		}

		for i, e := range engines {
			results[i].Status = StatusRunning
			if !yield(snapshot(fmt.Sprintf("%s (%s)", e.Name, e.NameZh)), "") {
				return
			}

			results[i] = a.adapter.Translate(ctx, text, req.Source, req.Target, e.ID)
			log.Debug().
				Str("engine", e.ID).
				Str("status", string(results[i].Status)).
				Dur("elapsed", results[i].Elapsed).
				Str("error", results[i].ErrorMessage).
				Msg("engine finished")

			current := ""
			if i < len(engines)-1 {
				current = e.Name
			}
			if !yield(snapshot(current), Summary(results)) {
				return
			}

			if i < len(engines)-1 {
				a.pause(ctx)
			}
		}

		yield(snapshot(""), Summary(results))
	}
}

// pause waits for the configured pace or until ctx ends.
func (a *Aggregator) pause(ctx context.Context) {
	if a.opts.Pace <= 0 {
		return
	}
	t := time.NewTimer(a.opts.Pace)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
