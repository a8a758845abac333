package player

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestStateIsActive(t *testing.T) {
	if Stopped.IsActive() {
		t.Error("Stopped.IsActive() = true")
	}
	if !Playing.IsActive() {
		t.Error("Playing.IsActive() = false")
	}
	if !Paused.IsActive() {
		t.Error("Paused.IsActive() = false")
	}
}

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -10},
		{-0.5, -10},
		{1.5, 0},
	}
	for _, tt := range tests {
		if got := levelToVolume(tt.level); got != tt.want {
			t.Errorf("levelToVolume(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestMockDeviceContract(t *testing.T) {
	m := NewMock()

	if got := m.State(); got != Stopped {
		t.Errorf("initial state = %v, want Stopped", got)
	}
	if err := m.Play(); err != ErrNothingLoaded {
		t.Errorf("Play with nothing loaded: err = %v, want ErrNothingLoaded", err)
	}

	// Pause and Stop while stopped are no-ops.
	m.Pause()
	m.Stop()
	if got := m.State(); got != Stopped {
		t.Errorf("state = %v after no-op pause/stop, want Stopped", got)
	}
}
