package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Play starts or resumes playback of the loaded track. It fails if nothing
// is loaded; callers must not mark themselves as playing until it returns nil.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil || p.streamer == nil {
		return ErrNothingLoaded
	}
	if p.state == Playing {
		return nil
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
	return nil
}

// Pause pauses playback. Idempotent; a no-op when nothing is playing.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Stop halts playback and drops the current stream. The end-of-track event
// never fires for a manually stopped track.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return
	}

	// Bump the serial so a pending finish callback for this stream is ignored.
	p.serial++

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.state = Stopped
}

// SeekTo sets the playback position directly. Clamping is the caller's
// responsibility.
func (p *Player) SeekTo(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil || p.state == Stopped {
		return
	}

	sample := p.format.SampleRate.N(pos)
	if sample < 0 {
		sample = 0
	}
	if sample >= p.streamer.Len() {
		sample = p.streamer.Len() - 1
	}

	speaker.Lock()
	_ = p.streamer.Seek(sample)
	speaker.Unlock()
}

// State returns the current device state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	// Read without the speaker lock; slightly stale is fine and avoids
	// deadlocks with the mixer callback.
	return p.format.SampleRate.D(p.streamer.Position())
}

// Duration returns the loaded track's duration, or 0 when nothing is loaded.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}
