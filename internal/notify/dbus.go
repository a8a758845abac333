//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyService = "org.freedesktop.Notifications"
	notifyPath    = dbus.ObjectPath("/org/freedesktop/Notifications")

	appName      = "minplayer"
	desktopEntry = "minplayer"
)

// sessionNotifier talks to the session bus notification daemon.
type sessionNotifier struct {
	obj dbus.BusObject
}

// New connects to the session notification daemon. Sessions without a bus
// (SSH, bare consoles) get the stub instead of an error: missing desktop
// notifications never block playback.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return NewStub(), nil
	}
	return &sessionNotifier{obj: conn.Object(notifyService, notifyPath)}, nil
}

func (s *sessionNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}

	call := s.obj.Call(notifyService+".Notify", 0,
		appName, n.ReplacesID, n.Icon, n.Title, n.Body, []string{}, hints, n.Timeout)
	if call.Err != nil {
		return 0, fmt.Errorf("notify call: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("notify reply: %w", err)
	}
	return id, nil
}

func (s *sessionNotifier) Close(id uint32) error {
	if id == 0 {
		return nil
	}
	return s.obj.Call(notifyService+".CloseNotification", 0, id).Err
}
