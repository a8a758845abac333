package player

// State represents the device playback state.
//
// Valid transitions:
//   - Stopped → Paused  (via Load: a track is prepared but not started)
//   - Paused  → Playing (via Play)
//   - Playing → Paused  (via Pause)
//   - Playing → Stopped (via Stop, or natural end of stream)
//   - Paused  → Stopped (via Stop)
//
// Invalid transitions are no-ops: Pause while stopped, Play with nothing
// loaded (returns an error), Stop while stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
