package notify

// stubNotifier is a no-op Notifier for platforms or sessions without D-Bus.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) { return 0, nil }

func (s *stubNotifier) Close(_ uint32) error { return nil }

// NewStub returns a Notifier that does nothing, used when notifications are
// disabled by configuration.
func NewStub() Notifier {
	return &stubNotifier{}
}
