package playlist

import "sort"

// Queue wraps a Playlist with the current-track pointer and the selection set
// used by the bulk delete workflow.
//
// Invariant, rechecked after every mutation: the current index is either -1
// (nothing loaded) or a valid index into the playlist.
type Queue struct {
	playlist     *Playlist
	currentIndex int // -1 if nothing current
	selected     map[int]bool
}

// NewQueue creates a new empty queue.
func NewQueue() *Queue {
	return &Queue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
		selected:     make(map[int]bool),
	}
}

// Current returns the current track, or nil if none.
func (q *Queue) Current() *Track {
	if q.currentIndex < 0 || q.currentIndex >= q.playlist.Len() {
		return nil
	}
	return q.playlist.Track(q.currentIndex)
}

// CurrentIndex returns the index of the current track (-1 if none).
func (q *Queue) CurrentIndex() int {
	return q.currentIndex
}

// SetCurrentIndex moves the current pointer. Returns the track at that
// position, or nil if the index is invalid (pointer unchanged).
func (q *Queue) SetCurrentIndex(index int) *Track {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// ClearCurrent resets the current pointer to none.
func (q *Queue) ClearCurrent() {
	q.currentIndex = -1
}

// HasNext returns true if there is a track after the current one.
func (q *Queue) HasNext() bool {
	return q.currentIndex >= 0 && q.currentIndex < q.playlist.Len()-1
}

// Append adds tracks at the end. The returned autoplay flag is true when the
// queue went from empty to non-empty, a recommendation to start playback of
// index 0; the caller decides whether to act on it.
func (q *Queue) Append(tracks ...Track) (autoplay bool) {
	wasEmpty := q.playlist.Len() == 0
	q.playlist.Add(tracks...)
	return wasEmpty && q.playlist.Len() > 0
}

// Track returns the track at index, or nil if out of bounds.
func (q *Queue) Track(index int) *Track {
	return q.playlist.Track(index)
}

// Tracks returns a copy of all tracks in the queue.
func (q *Queue) Tracks() []Track {
	return q.playlist.Tracks()
}

// Len returns the number of tracks in the queue.
func (q *Queue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.playlist.Len() == 0
}

// --- Selection ---

// ToggleSelect flips membership of index in the selection set.
// Out-of-bounds indices are ignored.
func (q *Queue) ToggleSelect(index int) {
	if index < 0 || index >= q.playlist.Len() {
		return
	}
	if q.selected[index] {
		delete(q.selected, index)
	} else {
		q.selected[index] = true
	}
}

// SelectAll marks every track as selected.
func (q *Queue) SelectAll() {
	for i := 0; i < q.playlist.Len(); i++ {
		q.selected[i] = true
	}
}

// ClearSelection empties the selection set.
func (q *Queue) ClearSelection() {
	q.selected = make(map[int]bool)
}

// IsSelected reports whether index is in the selection set.
func (q *Queue) IsSelected(index int) bool {
	return q.selected[index]
}

// SelectionCount returns the number of selected tracks.
func (q *Queue) SelectionCount() int {
	return len(q.selected)
}

// DeleteSelected removes all selected tracks, highest index first so earlier
// removals do not shift indices still pending. The current pointer is
// recomputed: deletions before it shift it down, deleting it resets it to -1.
// removedCurrent is true in that last case; the caller must stop playback.
// The selection is cleared unconditionally, even when it was empty.
func (q *Queue) DeleteSelected() (removedCurrent bool) {
	indices := make([]int, 0, len(q.selected))
	for idx := range q.selected {
		indices = append(indices, idx)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	for _, idx := range indices {
		if !q.playlist.Remove(idx) {
			continue
		}
		switch {
		case idx < q.currentIndex:
			q.currentIndex--
		case idx == q.currentIndex:
			q.currentIndex = -1
			removedCurrent = true
		}
	}

	q.selected = make(map[int]bool)
	return removedCurrent
}
