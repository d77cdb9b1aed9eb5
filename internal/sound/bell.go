// Package sound synthesizes the short chime played when P changes arc.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
)

// Chime returns a sine tone of freq Hz lasting d, fading out linearly.
func Chime(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := volume * env * math.Sin(step*float64(pos))
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// Bell mixes chimes into one endless stream that can be muted. Ring and
// SetMuted take the lock the audio backend streams under.
type Bell struct {
	sr     beep.SampleRate
	freq   float64
	dur    time.Duration
	volume float64

	lock  sync.Locker
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
}

// NewBell returns a Bell. lock may be nil when nothing streams concurrently.
func NewBell(sr beep.SampleRate, freq float64, dur time.Duration, volume float64, lock sync.Locker) *Bell {
	if lock == nil {
		lock = nopLocker{}
	}
	mixer := &beep.Mixer{}
	return &Bell{
		sr:     sr,
		freq:   freq,
		dur:    dur,
		volume: volume,
		lock:   lock,
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
	}
}

// Streamer is the stream to hand to the audio backend once. It never ends.
func (b *Bell) Streamer() beep.Streamer { return b.ctrl }

// Ring queues one chime. It is dropped while muted.
func (b *Bell) Ring() {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.ctrl.Paused {
		return
	}
	b.mixer.Add(Chime(b.sr, b.freq, b.dur, b.volume))
}

// SetMuted silences the bell and drops queued chimes.
func (b *Bell) SetMuted(muted bool) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.ctrl.Paused = muted
	if muted {
		b.mixer.Clear()
	}
}

// Muted reports whether the bell is silenced.
func (b *Bell) Muted() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.ctrl.Paused
}

// Pending returns the number of chimes still playing.
func (b *Bell) Pending() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.mixer.Len()
}
