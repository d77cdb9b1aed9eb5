package game

import (
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/chord-angle/internal/config"
	"github.com/iburimskiy/chord-angle/internal/sound"
)

// speakerLock lets the bell mutate its mixer under the speaker's lock.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// tapRingSize holds about 50ms of audio for the level meter.
const tapRingSize = 2048

// newBell initializes the speaker and starts the bell's endless stream
// through a level tap. It returns nils when no audio device is available.
func newBell(muted bool) (*sound.Bell, *sound.Tap) {
	sr := beep.SampleRate(config.ChimeSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		slog.Warn("audio disabled", "error", err)
		return nil, nil
	}
	bell := sound.NewBell(sr, config.ChimeFrequency, config.ChimeDurationMs*time.Millisecond, config.ChimeVolume, speakerLock{})
	bell.SetMuted(muted)
	tap := sound.NewTap(bell.Streamer(), tapRingSize)
	speaker.Play(tap)
	return bell, tap
}
