// Package animation advances P around the circle, one step per rendered
// frame, while playing. All calls must come from the frame loop's goroutine.
package animation

import (
	"log/slog"

	"github.com/iburimskiy/chord-angle/internal/geometry"
)

// Status is the playback state.
type Status int

const (
	Paused Status = iota
	Playing
)

func (s Status) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// FrameHandle identifies an armed tick. Zero means none.
type FrameHandle uint64

// Driver owns the pending tick handle and is the only thing that moves P
// on its own. Manual changes to P go through it so they can pause playback.
type Driver struct {
	state     *geometry.State
	increment float64

	status  Status
	pending FrameHandle
	next    FrameHandle
	closed  bool
	ticks   uint64

	lastArc geometry.Arc

	// OnCross is called when P moves onto the other arc, whether by a
	// tick, a manual move or a chord change.
	OnCross func(to geometry.Arc)
}

// NewDriver returns a paused driver for state, stepping by increment degrees.
func NewDriver(state *geometry.State, increment float64) *Driver {
	d := &Driver{state: state, increment: increment}
	d.lastArc = d.state.Derive().Arc
	return d
}

func (d *Driver) Status() Status { return d.status }

// Ticks returns how many ticks have fired.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Pending returns the armed tick handle, or zero.
func (d *Driver) Pending() FrameHandle { return d.pending }

// Snapshot derives the current figure.
func (d *Driver) Snapshot() geometry.Snapshot { return d.state.Derive() }

// Play starts playback and arms the first tick.
func (d *Driver) Play() {
	if d.closed || d.status == Playing {
		return
	}
	d.status = Playing
	d.arm()
	slog.Debug("animation playing", "p_angle", d.state.PAngle)
}

// Pause stops playback. The armed tick, if any, is canceled.
func (d *Driver) Pause() {
	d.cancel()
	if d.status == Paused {
		return
	}
	d.status = Paused
	slog.Debug("animation paused", "p_angle", d.state.PAngle, "ticks", d.ticks)
}

// Toggle switches between Paused and Playing.
func (d *Driver) Toggle() {
	if d.status == Playing {
		d.Pause()
		return
	}
	d.Play()
}

// Frame runs the armed tick, if any, and re-arms it while still playing.
// The frame loop calls it once per frame.
func (d *Driver) Frame() {
	if d.pending == 0 {
		return
	}
	d.pending = 0
	d.tick()
	if d.status == Playing && !d.closed {
		d.arm()
	}
}

// Close pauses for good. No tick fires after Close.
func (d *Driver) Close() {
	d.Pause()
	d.closed = true
}

// SetPAngle places P manually. It always pauses playback first so a tick
// cannot follow the manual change.
func (d *Driver) SetPAngle(v float64) {
	d.Pause()
	d.state.SetPAngle(v)
	d.observe()
}

// NudgePAngle moves P manually by delta degrees.
func (d *Driver) NudgePAngle(delta float64) {
	d.SetPAngle(d.state.PAngle + delta)
}

// SetChordSpread changes the chord. Playback is not affected.
func (d *Driver) SetChordSpread(v float64) {
	d.state.SetChordSpread(v)
	d.observe()
}

// Reset restores the default P and chord. Playback is not affected.
func (d *Driver) Reset() {
	d.state.Reset()
	d.observe()
}

func (d *Driver) tick() {
	d.ticks++
	d.state.Advance(d.increment)
	d.observe()
}

func (d *Driver) arm() {
	d.next++
	d.pending = d.next
}

func (d *Driver) cancel() {
	d.pending = 0
}

func (d *Driver) observe() {
	arc := d.state.Derive().Arc
	if arc == geometry.ArcEndpoint || arc == d.lastArc {
		return
	}
	d.lastArc = arc
	if d.OnCross != nil {
		d.OnCross(arc)
	}
}
