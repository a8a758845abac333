// Package playerbar renders the transport bar: status, track info, progress
// and volume.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/simonbasler/minplayer/internal/transport"
)

var (
	barStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Height is the rendered height including borders.
const Height = 3

// View renders the bar for the given transport snapshot.
func View(snap transport.Snapshot, width int) string {
	innerWidth := width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	if snap.Status == transport.StatusError {
		return barStyle.Width(innerWidth).Render(" " + errorStyle.Render(snap.ErrorMessage))
	}

	status := statusIcon(snap)

	left := " " + status + "  "
	if snap.Track != nil {
		left += snap.Track.Title
		if snap.Track.Artist != "" {
			left += dimStyle.Render(" — " + snap.Track.Artist)
		}
	} else {
		left += dimStyle.Render("nothing loaded")
	}

	right := fmt.Sprintf("%s / %s  %s ",
		formatClock(snap.Position),
		formatClock(snap.Duration),
		volumeGauge(snap.Volume),
	)

	pad := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}

	return barStyle.Width(innerWidth).Render(left + strings.Repeat(" ", pad) + right)
}

func statusIcon(snap transport.Snapshot) string {
	switch snap.Status {
	case transport.StatusPlaying:
		return "▶"
	case transport.StatusPaused:
		return "⏸"
	case transport.StatusLoading:
		return "…"
	default:
		return "■"
	}
}

// volumeGauge renders the volume as a small bar, e.g. "▮▮▮▯▯".
func volumeGauge(volume float64) string {
	const steps = 5
	filled := int(volume*steps + 0.5)
	if filled > steps {
		filled = steps
	}
	return strings.Repeat("▮", filled) + strings.Repeat("▯", steps-filled)
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
