package vis

import (
	"time"

	"github.com/elektrokombinacija/sokoban/internal/core"
)

// PlaybackState steps through the solution's state sequence. Playback is
// discrete: one push per tick, tick length set by Speed.
type PlaybackState struct {
	States   []core.State // initial state plus one state per push
	Index    int          // current position in States
	Speed    float64      // pushes per second
	Playing  bool
	lastStep time.Time
}

// NewPlaybackState creates a paused playback at the initial state.
func NewPlaybackState(states []core.State) *PlaybackState {
	return &PlaybackState{
		States:   states,
		Speed:    3.0,
		lastStep: time.Now(),
	}
}

// Current returns the state under the playhead.
func (p *PlaybackState) Current() core.State {
	return p.States[p.Index]
}

// AtEnd reports whether the playhead sits on the final state.
func (p *PlaybackState) AtEnd() bool {
	return p.Index >= len(p.States)-1
}

// TogglePlay toggles playback, restarting from the top when at the end.
func (p *PlaybackState) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastStep = time.Now()
		if p.AtEnd() {
			p.Index = 0
		}
	}
}

// Reset pauses and rewinds to the initial state.
func (p *PlaybackState) Reset() {
	p.Index = 0
	p.Playing = false
}

// StepForward pauses and advances one push.
func (p *PlaybackState) StepForward() {
	p.Playing = false
	if !p.AtEnd() {
		p.Index++
	}
}

// StepBack pauses and rewinds one push.
func (p *PlaybackState) StepBack() {
	p.Playing = false
	if p.Index > 0 {
		p.Index--
	}
}

// Advance moves the playhead forward if enough time has passed since the
// last step. Called once per frame while playing.
func (p *PlaybackState) Advance() {
	if !p.Playing {
		return
	}
	now := time.Now()
	if now.Sub(p.lastStep).Seconds() < 1.0/p.Speed {
		return
	}
	p.lastStep = now
	p.Index++
	if p.AtEnd() {
		p.Index = len(p.States) - 1
		p.Playing = false
	}
}

// SetSpeed clamps and sets the playback rate in pushes per second.
func (p *PlaybackState) SetSpeed(speed float64) {
	if speed < 0.5 {
		speed = 0.5
	}
	if speed > 20 {
		speed = 20
	}
	p.Speed = speed
}

// Progress returns playback position as 0-1.
func (p *PlaybackState) Progress() float64 {
	if len(p.States) <= 1 {
		return 1
	}
	return float64(p.Index) / float64(len(p.States)-1)
}
