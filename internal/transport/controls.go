package transport

import (
	"errors"
	"time"

	"github.com/simonbasler/minplayer/internal/player"
)

// TogglePlay pauses when playing and resumes or starts otherwise. With
// nothing current and a non-empty playlist it starts from the top. A resume
// rejected by the device is logged and the transport stays paused.
func (c *Controller) TogglePlay() {
	c.mu.Lock()

	switch {
	case c.status == StatusLoading:
		// A load is in flight; the toggle has nothing coherent to act on.
		c.mu.Unlock()
		return

	case c.playing:
		c.device.Pause()
		c.playing = false
		c.setStatusLocked(StatusPaused)
		c.mu.Unlock()
		return

	case c.queue.CurrentIndex() == -1:
		empty := c.queue.IsEmpty()
		c.mu.Unlock()
		if !empty {
			c.PlayTrack(0)
		}
		return

	default:
		if err := c.device.Play(); err != nil {
			idx := c.queue.CurrentIndex()
			c.mu.Unlock()
			if errors.Is(err, player.ErrNothingLoaded) && idx != -1 {
				// Restored session: a current track exists but was never
				// loaded into the device. Start it from scratch.
				c.PlayTrack(idx)
				return
			}
			c.log.Warn("resume rejected", "err", err)
			return
		}
		c.playing = true
		c.setStatusLocked(StatusPlaying)
		c.mu.Unlock()
		return
	}
}

// Next plays the track after the current one, if any.
func (c *Controller) Next() {
	c.mu.Lock()
	idx := c.queue.CurrentIndex()
	ok := idx >= 0 && idx+1 < c.queue.Len()
	c.mu.Unlock()
	if ok {
		c.PlayTrack(idx + 1)
	}
}

// Previous plays the track before the current one, if any.
func (c *Controller) Previous() {
	c.mu.Lock()
	idx := c.queue.CurrentIndex()
	c.mu.Unlock()
	if idx > 0 {
		c.PlayTrack(idx - 1)
	}
}

// SeekTo moves the playback position. Invalid while a load is in flight. The
// displayed position updates optimistically instead of waiting for the next
// device notification.
func (c *Controller) SeekTo(pos time.Duration) {
	c.mu.Lock()
	if c.status == StatusLoading || c.queue.CurrentIndex() == -1 {
		c.mu.Unlock()
		return
	}
	if pos < 0 {
		pos = 0
	}
	if c.duration > 0 && pos > c.duration {
		pos = c.duration
	}
	c.position = pos
	dur := c.duration
	c.mu.Unlock()

	c.device.SeekTo(pos)
	c.publish(func(s *Subscription) {
		s.sendPosition(PositionChange{Position: pos, Duration: dur})
	})
}

// SeekBy moves the position by a signed delta, clamped to the track bounds.
func (c *Controller) SeekBy(delta time.Duration) {
	c.mu.Lock()
	pos := c.position + delta
	c.mu.Unlock()
	c.SeekTo(pos)
}

// SetVolume clamps and applies the volume in any state. Volume is sticky
// across track changes.
func (c *Controller) SetVolume(v float64) {
	v = clampVolume(v)

	c.mu.Lock()
	c.volume = v
	c.mu.Unlock()

	c.device.SetVolume(v)
	c.publish(func(s *Subscription) {
		s.sendVolume(VolumeChange{Volume: v})
	})
}

// AdjustVolume changes the volume by a signed step.
func (c *Controller) AdjustVolume(delta float64) {
	c.mu.Lock()
	v := c.volume
	c.mu.Unlock()
	c.SetVolume(v + delta)
}

// Volume returns the current volume in [0, 1].
func (c *Controller) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

// IsPlaying reports whether audio is actually playing. This flag, not the
// display status, is the single source of truth.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Status returns the current display status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// ErrorMessage returns the transient error message, or "" outside the error
// state.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Position returns the last known playback position.
func (c *Controller) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Duration returns the current track's duration, 0 if unknown.
func (c *Controller) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}
