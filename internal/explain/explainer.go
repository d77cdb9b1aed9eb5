package explain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Messages shown instead of a generated explanation.
const (
	FallbackNoKey = "API key not found. Set GEMINI_API_KEY (or API_KEY) in your environment."
	FallbackEmpty = "Could not generate an explanation."
	FallbackError = "Something went wrong while asking Gemini for an explanation."
)

// Params is the frozen view of the figure an explanation is asked for.
type Params struct {
	ChordLength float64
	Angle       float64
	Radius      float64
	ChordSpread float64
}

// Key rounds the parameters the way the cache stores them.
func (p Params) Key() Key {
	return Key{
		ChordSpread:  int(math.Round(p.ChordSpread)),
		AngleTenths:  int(math.Round(p.Angle * 10)),
		RadiusTenths: int(math.Round(p.Radius * 10)),
	}
}

// Key identifies a cached explanation.
type Key struct {
	ChordSpread  int
	AngleTenths  int
	RadiusTenths int
}

// Cache stores explanations across runs. Errors are logged and ignored.
type Cache interface {
	Lookup(ctx context.Context, key Key) (string, bool, error)
	Save(ctx context.Context, key Key, text string) error
}

// Generator produces text for a prompt. *Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Explainer turns figure parameters into an explanation.
type Explainer struct {
	gen   Generator
	cache Cache
}

// NewExplainer returns an Explainer. gen and cache may be nil.
func NewExplainer(gen Generator, cache Cache) *Explainer {
	// A nil *Client inside a non-nil interface still reports "not configured".
	if c, ok := gen.(*Client); ok && !c.Enabled() {
		gen = nil
	}
	return &Explainer{gen: gen, cache: cache}
}

// Explain returns an explanation or one of the fallback messages. It never
// fails and never panics on a missing key.
func (e *Explainer) Explain(ctx context.Context, p Params) string {
	if e == nil || e.gen == nil {
		return FallbackNoKey
	}

	id := uuid.NewString()
	key := p.Key()
	log := slog.With("request_id", id, "spread", key.ChordSpread, "angle", p.Angle)

	if e.cache != nil {
		text, ok, err := e.cache.Lookup(ctx, key)
		switch {
		case err != nil:
			log.Warn("explanation cache lookup failed", "error", err)
		case ok:
			log.Debug("explanation cache hit")
			return text
		}
	}

	start := time.Now()
	log.Info("requesting explanation")
	text, err := e.gen.Generate(ctx, Prompt(p))
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return FallbackNoKey
		}
		log.Error("explanation request failed", "error", err, "elapsed", time.Since(start))
		return FallbackError
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn("explanation was empty", "elapsed", time.Since(start))
		return FallbackEmpty
	}
	log.Info("explanation received", "elapsed", time.Since(start), "chars", len(text))

	if e.cache != nil {
		if err := e.cache.Save(ctx, key, text); err != nil {
			log.Warn("explanation cache save failed", "error", err)
		}
	}
	return text
}

// Prompt builds the request sent to the service.
func Prompt(p Params) string {
	var b strings.Builder
	b.WriteString("I am exploring a geometry model: a fixed chord in a circle and the angle it subtends (\"fixed chord, fixed angle\").\n\n")
	b.WriteString("Current parameters:\n")
	fmt.Fprintf(&b, "- Circle radius: %g units\n", p.Radius)
	fmt.Fprintf(&b, "- Chord length: about %.2f units\n", p.ChordLength)
	fmt.Fprintf(&b, "- Inscribed angle (∠APB): %.1f degrees\n\n", p.Angle)
	b.WriteString("Give a short, engaging mathematical explanation (under 150 words) suitable for a high-school student.\n")
	b.WriteString("Explain why the angle stays the same while P moves along the major arc.\n")
	b.WriteString("You must mention the inscribed angle theorem.\n")
	b.WriteString("Use Markdown.\n")
	return b.String()
}
