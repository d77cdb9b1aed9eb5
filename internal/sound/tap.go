package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// monoRing keeps the most recent mono samples, oldest overwritten first.
type monoRing struct {
	data []float64
	head int
	full bool
}

func (r *monoRing) push(v float64) {
	r.data[r.head] = v
	r.head = (r.head + 1) % len(r.data)
	if r.head == 0 {
		r.full = true
	}
}

// size is the number of samples written so far, capped at the ring length.
func (r *monoRing) size() int {
	if r.full {
		return len(r.data)
	}
	return r.head
}

// sumSquares returns the sum of squares over the newest n samples and the
// number of samples it covered.
func (r *monoRing) sumSquares(n int) (float64, int) {
	n = min(n, r.size())
	var sum float64
	for i := 1; i <= n; i++ {
		v := r.data[(r.head-i+len(r.data))%len(r.data)]
		sum += v * v
	}
	return sum, n
}

// Tap passes a stream through unchanged and records its mono mix, so the
// window can show how loud the chime currently is.
type Tap struct {
	src beep.Streamer

	mu   sync.RWMutex
	ring monoRing
}

// NewTap wraps src with a ring of ringSize samples.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		src:  src,
		ring: monoRing{data: make([]float64, max(ringSize, 1))},
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	t.mu.Lock()
	for _, s := range samples[:n] {
		t.ring.push((s[0] + s[1]) / 2)
	}
	t.mu.Unlock()
	return n, ok
}

func (t *Tap) Err() error { return t.src.Err() }

// Level returns the RMS of the last n recorded samples.
func (t *Tap) Level(n int) float64 {
	if n <= 0 {
		return 0
	}
	t.mu.RLock()
	sum, got := t.ring.sumSquares(n)
	t.mu.RUnlock()
	if got == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(got))
}
