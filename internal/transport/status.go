package transport

// Status represents the transport display state machine.
//
//	┌──────┐ PlayTrack ┌─────────┐ load+play ok ┌─────────┐
//	│ Idle │──────────▶│ Loading │─────────────▶│ Playing │
//	└──────┘           └─────────┘              └─────────┘
//	    ▲                   │ failure               │ ▲
//	    │                   ▼                 pause │ │ resume
//	    │              ┌─────────┐                  ▼ │
//	    │   timeout    │  Error  │              ┌─────────┐
//	    └──────────────│(timed)  │─────────────▶│ Paused  │
//	                   └─────────┘   timeout    └─────────┘
//
// Error is transient: it auto-returns to Playing, Paused or Idle after a
// display window, depending on whether playback survived and whether a
// current track exists.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusPlaying
	StatusPaused
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusLoading:
		return "Loading"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}
