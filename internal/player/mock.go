package player

import (
	"sync"
	"time"
)

// Mock is a test double for the Device interface. All methods are safe for
// concurrent use; the controller drives it from several goroutines.
type Mock struct {
	mu sync.Mutex

	state       State
	position    time.Duration
	duration    time.Duration
	volumeLevel float64

	trackDurations map[string]time.Duration

	loadErr   error
	playErr   error
	loadCalls []string
	seekCalls []time.Duration
	stopCalls int

	events chan Event
	done   chan struct{}
}

// NewMock creates a new mock device for testing.
func NewMock() *Mock {
	return &Mock{
		state:       Stopped,
		volumeLevel: 1.0,
		events:      make(chan Event, eventBufferSize),
		done:        make(chan struct{}),
	}
}

func (m *Mock) Load(src Source) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, src.Path())
	if m.loadErr != nil {
		return m.loadErr
	}
	m.state = Paused
	m.position = 0
	m.duration = m.trackDurations[src.Path()]
	return nil
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playErr != nil {
		return m.playErr
	}
	if m.state == Stopped {
		return ErrNothingLoaded
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls++
	m.state = Stopped
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.volumeLevel = level
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volumeLevel
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() {
	select {
	case <-m.done:
	default:
		close(m.done)
	}
}

// Test helpers

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// SetTrackDuration makes Load report the given duration for a path, the way
// the real device learns the stream length while decoding.
func (m *Mock) SetTrackDuration(path string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.trackDurations == nil {
		m.trackDurations = make(map[string]time.Duration)
	}
	m.trackDurations[path] = d
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

// SimulateEnded emits an end-of-track event as the real device would.
func (m *Mock) SimulateEnded() {
	m.mu.Lock()
	m.state = Stopped
	m.mu.Unlock()
	m.events <- EndedEvent{}
}

// SimulatePosition emits a position event.
func (m *Mock) SimulatePosition(pos time.Duration) {
	m.mu.Lock()
	m.position = pos
	m.mu.Unlock()
	m.events <- PositionEvent{Position: pos}
}

// Verify Mock implements Device at compile time.
var _ Device = (*Mock)(nil)
