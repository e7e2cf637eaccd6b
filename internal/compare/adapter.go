package compare

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/valpere/mtcompare/internal/detector"
	"github.com/valpere/mtcompare/internal/engine"
	"github.com/valpere/mtcompare/internal/language"
	"github.com/valpere/mtcompare/internal/translator"
)

const (
	// DefaultGatewayTimeout bounds every gateway-family call.
	DefaultGatewayTimeout = 15 * time.Second
	// MaxErrorLength is the longest error message kept on a Result, in
	// user-perceived characters.
	MaxErrorLength = 80
)

// ErrEchoedSource marks an answer that repeats Chinese input unchanged when
// English was requested.
var ErrEchoedSource = errors.New("Translation returned unchanged source text")

const msgEngineNotFound = "Engine not found"

// Adapter turns one engine call into one Result. It never fails: every
// problem, including a panicking backend, ends up on the Result.
type Adapter struct {
	registry       *engine.Registry
	gatewayTimeout time.Duration
}

// NewAdapter builds an adapter over registry. A non-positive gatewayTimeout
// selects DefaultGatewayTimeout.
func NewAdapter(registry *engine.Registry, gatewayTimeout time.Duration) *Adapter {
	if gatewayTimeout <= 0 {
		gatewayTimeout = DefaultGatewayTimeout
	}
	return &Adapter{registry: registry, gatewayTimeout: gatewayTimeout}
}

// Translate runs text through engine id. source may be language.Auto.
func (a *Adapter) Translate(ctx context.Context, text, source, target, id string) Result {
	res := Result{
		EngineID:   id,
		Engine:     id,
		EngineZh:   id,
		SourceLang: source,
		TargetLang: target,
		SourceText: text,
		Status:     StatusError,
	}

	e, err := a.registry.Lookup(id)
	if err != nil {
		res.ErrorMessage = msgEngineNotFound
		return res
	}
	res.Engine, res.EngineZh = e.Name, e.NameZh

	call := a.prepare(e, text, source, target)

	start := time.Now()
	out, err := a.invoke(ctx, e, call)
	res.Elapsed = time.Since(start)

	out = strings.TrimSpace(out)
	if err == nil && echoed(out, text, target) {
		err = ErrEchoedSource
	}
	if err != nil {
		res.ErrorMessage = truncate(err.Error(), MaxErrorLength)
		return res
	}

	res.TranslatedText = out
	res.Success = out != ""
	if res.Success {
		res.Status = StatusSuccess
	}
	return res
}

// prepare resolves "auto" and remaps codes into the engine's dialect.
// Engines that detect on their own keep "auto" unless the heuristic found
// Chinese, which they tend to misread as Japanese.
func (a *Adapter) prepare(e engine.Engine, text, source, target string) translator.Call {
	detected := source
	if source == language.Auto {
		detected = detector.Detect(text)
	}

	src := e.Dialect.Remap(detected)
	if source == language.Auto && e.NativeAuto && !language.IsChinese(detected) {
		src = language.Auto
	}

	call := translator.Call{
		Vendor: e.Vendor,
		Text:   text,
		Source: src,
		Target: e.Dialect.Remap(target),
	}
	if e.Family == engine.FamilyGateway {
		call.Timeout = a.gatewayTimeout
	}
	return call
}

func (a *Adapter) invoke(ctx context.Context, e engine.Engine, call translator.Call) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", e.ID, r)
		}
	}()

	switch e.Family {
	case engine.FamilyGateway:
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.gatewayTimeout)
		defer cancel()
	case engine.FamilyDirect, engine.FamilyLLM:
	default:
		return "", fmt.Errorf("unsupported engine family %v", e.Family)
	}
	return e.Backend.Translate(ctx, call)
}

func echoed(out, text, target string) bool {
	if target != "en" || !detector.ContainsIdeograph(text) {
		return false
	}
	return norm.NFC.String(out) == norm.NFC.String(strings.TrimSpace(text))
}

// truncate keeps at most n grapheme clusters of s.
func truncate(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String()
}
