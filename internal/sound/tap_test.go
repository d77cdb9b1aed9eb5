package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestTapLevel(t *testing.T) {
	bell := NewBell(sr, 440, 50*time.Millisecond, 0.5, nil)
	tap := NewTap(bell.Streamer(), 1024)

	buf := make([][2]float64, 512)
	tap.Stream(buf)
	if lvl := tap.Level(512); lvl != 0 {
		t.Fatalf("silent stream has level %v", lvl)
	}

	bell.Ring()
	tap.Stream(buf)
	if lvl := tap.Level(512); lvl <= 0.1 || lvl > 0.5 {
		t.Fatalf("ringing level %v outside (0.1, 0.5]", lvl)
	}

	// Once the chime is over the ring fills with silence again.
	for i := 0; i < 20; i++ {
		tap.Stream(buf)
	}
	if lvl := tap.Level(1024); lvl != 0 {
		t.Fatalf("level after the chime = %v", lvl)
	}
}

func TestTapWrapsAround(t *testing.T) {
	const ring = 100
	var k int
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := float64(k % 2)
			samples[i] = [2]float64{v, v}
			k++
		}
		return len(samples), true
	})
	tap := NewTap(src, ring)
	tap.Stream(make([][2]float64, 250))

	// Alternating 0/1: RMS of any even window is sqrt(1/2).
	if lvl := tap.Level(ring); math.Abs(lvl-math.Sqrt(0.5)) > 1e-12 {
		t.Fatalf("level %v", lvl)
	}
	if lvl := tap.Level(10 * ring); math.Abs(lvl-math.Sqrt(0.5)) > 1e-12 {
		t.Fatalf("oversized window level %v", lvl)
	}
	if tap.Level(0) != 0 {
		t.Fatal("empty window should be silent")
	}
	if tap.Err() != nil {
		t.Fatal("unexpected error")
	}
}

func TestTapLevelBeforeRingFills(t *testing.T) {
	ones := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	tap := NewTap(ones, 64)
	if tap.Level(64) != 0 {
		t.Fatal("nothing streamed yet")
	}
	tap.Stream(make([][2]float64, 10))
	if lvl := tap.Level(64); lvl != 1 {
		t.Fatalf("level over a partly filled ring = %v, want 1", lvl)
	}
}

func TestTapPassesSamplesThrough(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples[:3] {
			samples[i] = [2]float64{0.25, -0.25}
		}
		return 3, false
	})
	tap := NewTap(src, 8)
	buf := make([][2]float64, 5)
	n, ok := tap.Stream(buf)
	if n != 3 || ok {
		t.Fatalf("n=%d ok=%v, want 3 false", n, ok)
	}
	if buf[0] != [2]float64{0.25, -0.25} {
		t.Fatalf("sample changed: %v", buf[0])
	}
	// Opposite channels cancel in the mono mix.
	if lvl := tap.Level(8); lvl != 0 {
		t.Fatalf("level %v", lvl)
	}
}
