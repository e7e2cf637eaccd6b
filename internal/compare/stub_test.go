package compare

import (
	"context"
	"testing"

	"github.com/valpere/mtcompare/internal/engine"
	"github.com/valpere/mtcompare/internal/translator"
)

// stubBackend records calls and answers through fn.
type stubBackend struct {
	name  string
	fn    func(ctx context.Context, call translator.Call) (string, error)
	calls []translator.Call
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Translate(ctx context.Context, call translator.Call) (string, error) {
	s.calls = append(s.calls, call)
	return s.fn(ctx, call)
}

func fixed(name, out string) *stubBackend {
	return &stubBackend{name: name, fn: func(context.Context, translator.Call) (string, error) {
		return out, nil
	}}
}

func failing(name string, err error) *stubBackend {
	return &stubBackend{name: name, fn: func(context.Context, translator.Call) (string, error) {
		return "", err
	}}
}

// bind attaches backend to the catalog descriptor of id.
func bind(t *testing.T, id string, backend translator.Backend) engine.Integration {
	t.Helper()
	d, ok := engine.Describe(id)
	if !ok {
		t.Fatalf("no catalog entry for %q", id)
	}
	return engine.NewIntegration(d.Family, engine.Engine{Descriptor: d, Backend: backend})
}
