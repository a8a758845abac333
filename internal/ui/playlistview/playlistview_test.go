package playlistview

import (
	"strings"
	"testing"
	"time"

	"github.com/simonbasler/minplayer/internal/playlist"
)

func TestMoveCursorClamps(t *testing.T) {
	m := New()
	m.SetSize(80, 10)

	m.MoveCursor(-1, 5)
	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor = %d after moving up from the top, want 0", got)
	}

	m.MoveCursor(3, 5)
	if got := m.Cursor(); got != 3 {
		t.Errorf("cursor = %d, want 3", got)
	}

	m.MoveCursor(10, 5)
	if got := m.Cursor(); got != 4 {
		t.Errorf("cursor = %d after moving past the end, want 4", got)
	}

	m.MoveCursor(1, 0)
	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor = %d on an empty list, want 0", got)
	}
}

func TestClampCursorAfterShrink(t *testing.T) {
	m := New()
	m.SetSize(80, 10)
	m.MoveCursor(7, 8)

	m.ClampCursor(3)
	if got := m.Cursor(); got != 2 {
		t.Errorf("cursor = %d after the list shrank to 3, want 2", got)
	}

	m.ClampCursor(0)
	if got := m.Cursor(); got != 0 {
		t.Errorf("cursor = %d after the list emptied, want 0", got)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m := New()
	m.SetSize(80, 3)

	rows := make([]Row, 10)
	for i := range rows {
		rows[i] = Row{Track: playlist.Track{Title: title(i)}}
	}

	m.MoveCursor(5, len(rows))
	out := m.View(rows)
	if !strings.Contains(out, title(5)) {
		t.Error("row under the cursor not visible after scrolling down")
	}
	if strings.Contains(out, title(0)) {
		t.Error("top row still visible after scrolling past it")
	}

	m.MoveCursor(-5, len(rows))
	out = m.View(rows)
	if !strings.Contains(out, title(0)) {
		t.Error("top row not visible after scrolling back up")
	}
}

func title(i int) string {
	return "track-" + string(rune('a'+i))
}

func TestViewEmpty(t *testing.T) {
	m := New()
	m.SetSize(80, 10)

	out := m.View(nil)
	if !strings.Contains(out, "Drop audio files") {
		t.Errorf("empty view = %q, want the drop hint", out)
	}
}

func TestViewMarkers(t *testing.T) {
	m := New()
	m.SetSize(80, 10)

	rows := []Row{
		{Track: playlist.Track{Title: "playing now"}, Current: true},
		{Track: playlist.Track{Title: "picked"}, Selected: true},
		{Track: playlist.Track{Title: "plain"}},
	}
	out := m.View(rows)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "▶") {
		t.Errorf("current row %q missing playback marker", lines[0])
	}
	if !strings.Contains(lines[1], "✓") {
		t.Errorf("selected row %q missing selection marker", lines[1])
	}
	if strings.Contains(lines[2], "▶") || strings.Contains(lines[2], "✓") {
		t.Errorf("plain row %q has a marker", lines[2])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "--:--"},
		{-time.Second, "--:--"},
		{9 * time.Second, "0:09"},
		{65 * time.Second, "1:05"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
