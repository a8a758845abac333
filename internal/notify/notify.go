// Package notify raises desktop notifications on track changes. A stub
// implementation stands in when notifications are disabled or no session bus
// is reachable, so callers never branch on platform.
package notify

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one message to show. A non-zero ReplacesID updates the
// earlier notification in place instead of stacking a new bubble; the player
// uses this so rapid track changes reuse a single bubble.
type Notification struct {
	Title      string
	Body       string
	Icon       string // icon name or image path, optional
	Timeout    int32  // milliseconds; -1 for the server default, 0 for sticky
	ReplacesID uint32
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns the server-assigned ID, 0 when
	// notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close dismisses a previously shown notification.
	Close(id uint32) error
}
