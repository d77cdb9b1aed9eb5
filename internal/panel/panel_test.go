package panel

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/iburimskiy/chord-angle/internal/explain"
)

type gated struct {
	release chan struct{}
	got     chan explain.Params
}

func (g *gated) Explain(_ context.Context, p explain.Params) string {
	g.got <- p
	<-g.release
	return "line one\nline two"
}

func waitPoll(t *testing.T, p *Panel) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !p.Poll() {
		if time.Now().After(deadline) {
			t.Fatal("result never arrived")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestAskLifecycle(t *testing.T) {
	g := &gated{release: make(chan struct{}), got: make(chan explain.Params, 1)}
	p := New(g)

	if p.Loading() || p.Text() != "" {
		t.Fatal("new panel should be idle and empty")
	}
	if lines := p.Lines(0); len(lines) != 1 || lines[0] != Placeholder {
		t.Fatalf("placeholder lines = %q", lines)
	}

	params := explain.Params{ChordLength: 8.66, Angle: 60, Radius: 5}
	if !p.Ask(context.Background(), params) {
		t.Fatal("first Ask should start a request")
	}
	if got := <-g.got; got != params {
		t.Fatalf("explainer got %+v", got)
	}
	if !p.Loading() {
		t.Fatal("expected loading while in flight")
	}
	if p.Ask(context.Background(), params) {
		t.Fatal("second Ask must be refused while loading")
	}
	if p.Poll() {
		t.Fatal("Poll applied a result that is not ready")
	}

	close(g.release)
	waitPoll(t, p)
	if p.Loading() {
		t.Fatal("still loading after the result arrived")
	}
	if want := []string{"line one", "line two"}; !reflect.DeepEqual(p.Lines(80), want) {
		t.Fatalf("lines = %q", p.Lines(80))
	}
}

func TestRestore(t *testing.T) {
	g := &gated{release: make(chan struct{}), got: make(chan explain.Params, 1)}
	p := New(g)

	if p.Restore("   ") {
		t.Fatal("blank text should not be restored")
	}
	if !p.Restore("from last time") || p.Text() != "from last time" {
		t.Fatalf("restore failed, text = %q", p.Text())
	}
	if p.Restore("again") {
		t.Fatal("restore should not replace existing text")
	}

	p = New(g)
	p.Ask(context.Background(), explain.Params{Angle: 60})
	<-g.got
	if p.Restore("late") {
		t.Fatal("restore should not run while loading")
	}
	close(g.release)
	waitPoll(t, p)
	if p.Text() != "line one\nline two" {
		t.Fatalf("text = %q", p.Text())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"the angle stays the same", 10, []string{"the angle", "stays the", "same"}},
		{"abcdefghijkl xy", 5, []string{"abcde", "fghij", "kl xy"}},
		{"∠APB is constant", 8, []string{"∠APB is", "constant"}},
		{"", 10, []string{""}},
	}
	for _, tt := range tests {
		if got := wrap(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
