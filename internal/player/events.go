package player

import "time"

// Event is a notification emitted by the device on its event channel.
// Events arrive asynchronously and at unspecified intervals; consumers must
// not assume any ordering between position updates and state changes they
// initiated themselves.
type Event interface{ playerEvent() }

// PositionEvent carries the current playback position. Emitted periodically
// while playing.
type PositionEvent struct {
	Position time.Duration
}

// EndedEvent signals natural end of playback. Emitted exactly once per
// completed track, never on pause, seek or manual stop.
type EndedEvent struct{}

func (PositionEvent) playerEvent() {}
func (EndedEvent) playerEvent()    {}

const eventBufferSize = 16

// emit sends an event without blocking, dropping it if the buffer is full.
func (p *Player) emit(e Event) {
	select {
	case p.events <- e:
	default:
	}
}
