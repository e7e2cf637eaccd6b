// Package server serves the comparison web UI and its JSON/SSE API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/valpere/mtcompare/internal/compare"
	"github.com/valpere/mtcompare/internal/engine"
	"github.com/valpere/mtcompare/internal/examples"
	"github.com/valpere/mtcompare/internal/language"
	"github.com/valpere/mtcompare/internal/render"
)

// Options configure a Server.
type Options struct {
	Aggregator  compare.Options
	CORSOrigins []string
	// Source and Target preselect the form languages.
	Source string
	Target string
	Logger zerolog.Logger
}

// Server exposes one registry over HTTP.
type Server struct {
	registry *engine.Registry
	opts     Options
	log      zerolog.Logger
}

func New(registry *engine.Registry, opts Options) *Server {
	if opts.Source == "" {
		opts.Source = language.Auto
	}
	if opts.Target == "" {
		opts.Target = "en"
	}
	return &Server{registry: registry, opts: opts, log: opts.Logger}
}

// Handler returns the router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(corsOptions(s.opts.CORSOrigins)))

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/engines", s.handleEngines)
		r.Get("/languages", s.handleLanguages)
		r.Get("/examples", s.handleExamples)
		r.Get("/compare", s.handleCompare)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Int("engines", s.registry.Len()).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func corsOptions(allowedOrigins []string) cors.Options {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Last-Event-ID"},
		MaxAge:         300,
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		ev := s.log.Debug()
		if ww.Status() >= 400 {
			ev = s.log.Warn()
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	jsonResponse(w, map[string]string{"error": msg}, status)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]any{"status": "ok", "engines": s.registry.Len()}, http.StatusOK)
}

func (s *Server) handleEngines(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, s.registry.Descriptors(), http.StatusOK)
}

type languagesResponse struct {
	Source []language.Option `json:"source"`
	Target []language.Option `json:"target"`
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	source := append([]language.Option{{Code: language.Auto, Label: language.Label(language.Auto)}}, language.Supported...)
	jsonResponse(w, languagesResponse{Source: source, Target: language.Supported}, http.StatusOK)
}

func (s *Server) handleExamples(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, examples.Catalog, http.StatusOK)
}

// parseRequest reads a comparison from query parameters. engines may be
// repeated or comma separated.
func (s *Server) parseRequest(r *http.Request) (compare.Request, error) {
	q := r.URL.Query()

	req := compare.Request{
		Text:    q.Get("text"),
		Source:  language.ParseChoice(q.Get("source")),
		Target:  language.ParseChoice(q.Get("target")),
		Engines: s.registry.Expand(q["engines"]),
	}
	if req.Source == "" {
		req.Source = s.opts.Source
	}
	if req.Target == "" {
		req.Target = s.opts.Target
	}
	if err := language.Validate(req.Source, true); err != nil {
		return req, fmt.Errorf("source: %w", err)
	}
	if err := language.Validate(req.Target, false); err != nil {
		return req, fmt.Errorf("target: %w", err)
	}
	return req, nil
}

// frame is one SSE event payload.
type frame struct {
	HTML    string `json:"html"`
	Summary string `json:"summary"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		jsonError(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	seq := compare.NewAggregator(s.registry, s.withLogger()).Stream(r.Context(), req)
	switch {
	case strings.TrimSpace(req.Text) == "":
		seq = compare.Message(compare.MsgEmptyText)
	case len(req.Engines) == 0:
		seq = compare.Message(compare.MsgNoEngines)
	}

	for snap, summary := range seq {
		html, err := render.HTML(snap)
		if err != nil {
			s.log.Error().Err(err).Msg("render snapshot")
			return
		}
		if err := writeEvent(w, "frame", frame{HTML: string(html), Summary: summary}); err != nil {
			return
		}
		flusher.Flush()
	}
	if err := writeEvent(w, "done", struct{}{}); err == nil {
		flusher.Flush()
	}
}

func (s *Server) withLogger() compare.Options {
	opts := s.opts.Aggregator
	opts.Logger = s.log
	return opts
}

func writeEvent(w http.ResponseWriter, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}
