// Package panel holds the explanation panel's state: the current text and
// whether a request is in flight. Requests run on their own goroutine; the
// result is picked up by Poll on the frame loop, so the panel is only ever
// written from one goroutine.
package panel

import (
	"context"
	"strings"

	"github.com/iburimskiy/chord-angle/internal/explain"
)

// Placeholder is shown before the first explanation arrives.
const Placeholder = "Press \"Ask tutor\" (or E) for an explanation of the inscribed angle theorem for the current figure."

// Explainer produces the text for a frozen set of figure parameters.
type Explainer interface {
	Explain(ctx context.Context, p explain.Params) string
}

// Panel is the explanation panel state.
type Panel struct {
	explainer Explainer
	results   chan string

	text    string
	loading bool
}

// New returns an empty panel backed by e.
func New(e Explainer) *Panel {
	return &Panel{
		explainer: e,
		results:   make(chan string, 1),
	}
}

// Ask starts a request for p unless one is already in flight. It reports
// whether a request was started.
func (p *Panel) Ask(ctx context.Context, params explain.Params) bool {
	if p.loading {
		return false
	}
	p.loading = true
	go func() {
		p.results <- p.explainer.Explain(ctx, params)
	}()
	return true
}

// Poll applies a finished request, if any. It reports whether the text changed.
func (p *Panel) Poll() bool {
	select {
	case text := <-p.results:
		p.text = text
		p.loading = false
		return true
	default:
		return false
	}
}

// Restore shows text from an earlier session. It is ignored once the panel
// has text or a request is in flight.
func (p *Panel) Restore(text string) bool {
	if p.loading || p.text != "" || strings.TrimSpace(text) == "" {
		return false
	}
	p.text = text
	return true
}

// Loading reports whether a request is in flight.
func (p *Panel) Loading() bool { return p.loading }

// Text returns the current explanation, or "" before the first one.
func (p *Panel) Text() string { return p.text }

// Lines returns the text to display, wrapped to width runes per line.
func (p *Panel) Lines(width int) []string {
	text := p.text
	if text == "" {
		text = Placeholder
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrap(strings.TrimRight(line, " \t\r"), width)...)
	}
	return out
}

func wrap(line string, width int) []string {
	if width <= 0 || len([]rune(line)) <= width {
		return []string{line}
	}
	var (
		out []string
		cur []rune
	)
	for _, word := range strings.Fields(line) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = nil
			}
			out = append(out, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			out = append(out, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}
