// Package transport orchestrates the playback device, the resource manager
// and the playlist queue. It owns the transport state machine, the single
// source of truth for "is playing", and the staleness guard that lets a new
// track request supersede an in-flight load.
package transport

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/simonbasler/minplayer/internal/errmsg"
	"github.com/simonbasler/minplayer/internal/player"
	"github.com/simonbasler/minplayer/internal/playlist"
	"github.com/simonbasler/minplayer/internal/resource"
)

// DefaultErrorTimeout is how long the transient error state is displayed
// before it dismisses itself.
const DefaultErrorTimeout = 3 * time.Second

// loadRequest identifies one requested track load. The generation is compared
// against the controller's latest at every suspension point; a mismatch means
// the request was superseded and its outcome must be discarded silently.
type loadRequest struct {
	index int
	path  string
	gen   uint64
}

// Controller is the transport state machine.
type Controller struct {
	mu sync.Mutex

	device player.Device
	res    *resource.Manager
	queue  *playlist.Queue
	log    *log.Logger

	status  Status
	playing bool // authoritative isPlaying; implies a valid current index
	errMsg  string

	volume   float64
	position time.Duration
	duration time.Duration

	gen          uint64
	errTimer     *time.Timer
	errorTimeout time.Duration

	// loadCh holds at most one pending request; a newer request replaces it.
	// Superseding is the only cancellation mechanism.
	loadCh chan loadRequest
	done   chan struct{}
	closed bool

	subs   []*Subscription
	subsMu sync.RWMutex
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithErrorTimeout overrides the error display window.
func WithErrorTimeout(d time.Duration) Option {
	return func(c *Controller) { c.errorTimeout = d }
}

// WithVolume sets the initial volume, clamped to [0, 1].
func WithVolume(v float64) Option {
	return func(c *Controller) { c.volume = clampVolume(v) }
}

// New creates a controller and starts its loader and device event loops.
func New(device player.Device, res *resource.Manager, queue *playlist.Queue, opts ...Option) *Controller {
	c := &Controller{
		device:       device,
		res:          res,
		queue:        queue,
		log:          log.Default(),
		status:       StatusIdle,
		volume:       1.0,
		errorTimeout: DefaultErrorTimeout,
		loadCh:       make(chan loadRequest, 1),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	device.SetVolume(c.volume)

	go c.loaderLoop()
	go c.eventLoop()
	return c
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close shuts the controller down. The device and resource manager are owned
// by the caller and closed separately.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.errTimer != nil {
		c.errTimer.Stop()
	}
	close(c.done)
	c.mu.Unlock()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()
}

// PlayTrack requests playback of the track at index. The current pointer
// moves synchronously; materialization and device loading happen on the
// loader goroutine so the caller never blocks. Calling again before the load
// resolves supersedes the earlier request.
func (c *Controller) PlayTrack(index int) {
	c.mu.Lock()
	track := c.queue.Track(index)
	if track == nil || !resource.IsSupportedFile(track.Path) {
		// Current index and any running playback stay untouched.
		c.enterErrorLocked(errmsg.MsgInvalidFileType, false)
		c.mu.Unlock()
		return
	}

	c.queue.SetCurrentIndex(index)
	c.position = 0
	c.duration = track.Duration
	c.setStatusLocked(StatusLoading)
	c.gen++
	req := loadRequest{index: index, path: track.Path, gen: c.gen}
	cur := *track
	c.mu.Unlock()

	c.publish(func(s *Subscription) {
		s.sendTrack(TrackChange{Index: index, Current: &cur})
	})

	// Replace any pending request instead of queueing behind it.
	for {
		select {
		case c.loadCh <- req:
			return
		default:
		}
		select {
		case <-c.loadCh:
		default:
		}
	}
}

// loaderLoop services load requests one at a time.
func (c *Controller) loaderLoop() {
	for {
		select {
		case <-c.done:
			return
		case req := <-c.loadCh:
			c.load(req)
		}
	}
}

// load materializes a handle and hands it to the device. Stale requests are
// abandoned at each step: their handle, if any, is released without ever
// becoming active, and their errors are never surfaced.
func (c *Controller) load(req loadRequest) {
	if c.stale(req.gen) {
		c.log.Debug("load superseded before start", "path", req.path)
		return
	}

	handle, err := c.res.Materialize(req.path)

	c.mu.Lock()
	if req.gen != c.gen {
		c.mu.Unlock()
		if handle != nil {
			handle.Close()
		}
		c.log.Debug("load superseded during materialize", "path", req.path)
		return
	}
	if err != nil {
		c.playing = false
		c.enterErrorLocked(errmsg.MsgLoadFailed, true)
		c.mu.Unlock()
		c.log.Warn("materialize failed", "path", req.path, "err", err)
		return
	}
	c.mu.Unlock()

	c.log.Debug("materialized", "path", req.path, "size", humanize.IBytes(uint64(handle.Size())))

	loadErr := c.device.Load(handle)

	c.mu.Lock()
	if req.gen != c.gen {
		c.mu.Unlock()
		// Never became the active handle; the superseding load will stop
		// the device before anything reads from this buffer again.
		handle.Close()
		c.log.Debug("load superseded during device load", "path", req.path)
		return
	}
	if loadErr != nil {
		c.playing = false
		c.enterErrorLocked(errmsg.MsgLoadFailed, true)
		c.mu.Unlock()
		handle.Close()
		c.log.Warn("device load failed", "path", req.path, "err", loadErr)
		return
	}

	// New handle is live in the device; only now is the previous one released.
	c.res.Adopt(handle)
	c.device.SetVolume(c.volume)

	if err := c.device.Play(); err != nil {
		c.playing = false
		c.enterErrorLocked(errmsg.MsgLoadFailed, true)
		c.mu.Unlock()
		c.log.Warn("play rejected", "path", req.path, "err", err)
		return
	}
	c.playing = true
	c.setStatusLocked(StatusPlaying)

	// The duration is read here, still under the generation check, so a
	// superseded load can never write its track's length over another's.
	// Deletes may have shifted the pointer, but while the generation matches
	// it still names the track this load was for.
	if dur := c.device.Duration(); dur > 0 {
		c.duration = dur
		if t := c.queue.Current(); t != nil && t.Duration == 0 {
			t.Duration = dur
		}
	}
	pos, dur := c.position, c.duration
	c.mu.Unlock()

	c.publish(func(s *Subscription) {
		s.sendPosition(PositionChange{Position: pos, Duration: dur})
	})
}

// stale reports whether the generation is no longer the latest.
func (c *Controller) stale(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen != c.gen
}

// eventLoop consumes device notifications. Ended events are resolved against
// live queue state at delivery time, never against state captured when
// playback started.
func (c *Controller) eventLoop() {
	for {
		select {
		case <-c.done:
			return
		case ev := <-c.device.Events():
			switch e := ev.(type) {
			case player.PositionEvent:
				c.handlePosition(e.Position)
			case player.EndedEvent:
				c.handleEnded()
			}
		}
	}
}

func (c *Controller) handlePosition(pos time.Duration) {
	c.mu.Lock()
	if !c.playing {
		c.mu.Unlock()
		return
	}
	c.position = pos
	dur := c.duration
	c.mu.Unlock()

	c.publish(func(s *Subscription) {
		s.sendPosition(PositionChange{Position: pos, Duration: dur})
	})
}

// handleEnded advances to the next track, or stops after the last one.
func (c *Controller) handleEnded() {
	c.mu.Lock()
	idx := c.queue.CurrentIndex()
	length := c.queue.Len()

	if idx < 0 || idx >= length {
		// The playlist mutated under the finished track; nothing to advance.
		c.playing = false
		if idx < 0 {
			c.setStatusLocked(StatusIdle)
		} else {
			c.setStatusLocked(StatusPaused)
		}
		c.mu.Unlock()
		return
	}

	if idx+1 < length {
		c.mu.Unlock()
		c.PlayTrack(idx + 1)
		return
	}

	// Last track: stop without wraparound, pointer stays where it is.
	c.playing = false
	c.position = 0
	c.setStatusLocked(StatusPaused)
	c.mu.Unlock()
}

// --- status and error machinery ---

// setStatusLocked transitions the display status and notifies subscribers.
// Callers hold c.mu; subscriber sends are non-blocking so this cannot stall.
func (c *Controller) setStatusLocked(next Status) {
	if c.status == next {
		return
	}
	prev := c.status
	c.status = next
	c.publish(func(s *Subscription) {
		s.sendStatus(StatusChange{Previous: prev, Current: next})
	})
}

// enterErrorLocked switches to the transient error display. The newest
// message wins and the dismiss timer restarts with it. stopPlayback marks
// playback as failed; a display-only error (invalid file type while something
// else keeps playing) leaves the playing flag alone.
func (c *Controller) enterErrorLocked(msg string, stopPlayback bool) {
	if stopPlayback {
		c.playing = false
	}
	c.errMsg = msg
	c.setStatusLocked(StatusError)
	if c.errTimer != nil {
		c.errTimer.Stop()
	}
	c.errTimer = time.AfterFunc(c.errorTimeout, c.dismissError)
	c.publish(func(s *Subscription) {
		s.sendError(ErrorEvent{Message: msg})
	})
}

// dismissError returns from the error display to the state playback is
// actually in.
func (c *Controller) dismissError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status != StatusError {
		return
	}
	c.errMsg = ""
	switch {
	case c.playing:
		c.setStatusLocked(StatusPlaying)
	case c.queue.CurrentIndex() != -1:
		c.setStatusLocked(StatusPaused)
	default:
		c.setStatusLocked(StatusIdle)
	}
}

// publish fans an event out to all subscribers.
func (c *Controller) publish(fn func(*Subscription)) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, s := range c.subs {
		fn(s)
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
