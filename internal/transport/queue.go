package transport

import (
	"time"

	"github.com/simonbasler/minplayer/internal/playlist"
)

// The queue is owned by the controller; every access goes through its lock.
// External collaborators append batches and never mutate tracks in place.

// Append adds a batch of tracks to the end of the playlist. When the playlist
// goes from empty to non-empty, playback of the first track starts, acting on
// the queue's auto-start recommendation.
func (c *Controller) Append(tracks []playlist.Track) {
	if len(tracks) == 0 {
		return
	}

	c.mu.Lock()
	autoplay := c.queue.Append(tracks...)
	length := c.queue.Len()
	idx := c.queue.CurrentIndex()
	c.mu.Unlock()

	c.log.Info("tracks added", "count", len(tracks), "total", length)
	c.publish(func(s *Subscription) {
		s.sendQueue(QueueChange{Len: length, CurrentIndex: idx})
	})

	if autoplay {
		c.PlayTrack(0)
	}
}

// Restore loads a saved session playlist without starting playback. The
// current pointer is set so TogglePlay resumes where the last session left
// off; nothing is loaded into the device until then.
func (c *Controller) Restore(tracks []playlist.Track, index int) {
	if len(tracks) == 0 {
		return
	}

	c.mu.Lock()
	if !c.queue.IsEmpty() {
		// The user got there first; don't clobber their playlist.
		c.mu.Unlock()
		return
	}
	c.queue.Append(tracks...)
	if index >= 0 && index < c.queue.Len() {
		c.queue.SetCurrentIndex(index)
		c.setStatusLocked(StatusPaused)
	}
	length := c.queue.Len()
	idx := c.queue.CurrentIndex()
	c.mu.Unlock()

	c.log.Info("session restored", "tracks", length, "index", idx)
	c.publish(func(s *Subscription) {
		s.sendQueue(QueueChange{Len: length, CurrentIndex: idx})
	})
}

// ToggleSelect flips selection of the track at index.
func (c *Controller) ToggleSelect(index int) {
	c.mu.Lock()
	c.queue.ToggleSelect(index)
	c.mu.Unlock()
	c.publishQueue()
}

// SelectAll selects every track.
func (c *Controller) SelectAll() {
	c.mu.Lock()
	c.queue.SelectAll()
	c.mu.Unlock()
	c.publishQueue()
}

// ClearSelection empties the selection set.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.queue.ClearSelection()
	c.mu.Unlock()
	c.publishQueue()
}

// IsSelected reports whether the track at index is selected.
func (c *Controller) IsSelected(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.IsSelected(index)
}

// SelectionCount returns the number of selected tracks.
func (c *Controller) SelectionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.SelectionCount()
}

// DeleteSelected removes the selected tracks. Deleting the currently playing
// track stops playback, releases its audio buffer, and supersedes any load
// still in flight for it.
func (c *Controller) DeleteSelected() {
	c.mu.Lock()
	removedCurrent := c.queue.DeleteSelected()
	if removedCurrent {
		c.gen++ // an in-flight load for the deleted track must not land
		c.playing = false
		c.device.Stop()
		c.res.Release()
		c.setStatusLocked(StatusIdle)
		c.position = 0
		c.duration = 0
	}
	length := c.queue.Len()
	idx := c.queue.CurrentIndex()
	c.mu.Unlock()

	c.publish(func(s *Subscription) {
		s.sendQueue(QueueChange{Len: length, CurrentIndex: idx})
		if removedCurrent {
			s.sendTrack(TrackChange{Index: -1, Current: nil})
		}
	})
}

// Tracks returns a copy of the playlist.
func (c *Controller) Tracks() []playlist.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Tracks()
}

// CurrentIndex returns the current track index, -1 if none.
func (c *Controller) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.CurrentIndex()
}

// CurrentTrack returns a copy of the current track, or nil.
func (c *Controller) CurrentTrack() *playlist.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.queue.Current()
	if t == nil {
		return nil
	}
	cur := *t
	return &cur
}

// QueueLen returns the number of tracks.
func (c *Controller) QueueLen() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Len()
}

func (c *Controller) publishQueue() {
	c.mu.Lock()
	length := c.queue.Len()
	idx := c.queue.CurrentIndex()
	c.mu.Unlock()
	c.publish(func(s *Subscription) {
		s.sendQueue(QueueChange{Len: length, CurrentIndex: idx})
	})
}

// Snapshot is a consistent view of the transport for rendering.
type Snapshot struct {
	Status       Status
	ErrorMessage string
	IsPlaying    bool
	CurrentIndex int
	Track        *playlist.Track
	Position     time.Duration
	Duration     time.Duration
	Volume       float64
	QueueLen     int
}

// Snapshot captures the whole transport state under one lock acquisition.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Status:       c.status,
		ErrorMessage: c.errMsg,
		IsPlaying:    c.playing,
		CurrentIndex: c.queue.CurrentIndex(),
		Position:     c.position,
		Duration:     c.duration,
		Volume:       c.volume,
		QueueLen:     c.queue.Len(),
	}
	if t := c.queue.Current(); t != nil {
		cur := *t
		snap.Track = &cur
	}
	return snap
}
