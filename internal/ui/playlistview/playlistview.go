// Package playlistview renders the playlist with cursor, selection marks and
// the current-track indicator.
package playlistview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/simonbasler/minplayer/internal/playlist"
)

var (
	currentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Row is one rendered playlist entry.
type Row struct {
	Track    playlist.Track
	Current  bool
	Selected bool
}

// Model holds cursor and scroll state; track data is passed in per render so
// the transport stays the single owner of playlist state.
type Model struct {
	cursor int
	offset int
	width  int
	height int
}

// New creates an empty playlist view.
func New() Model {
	return Model{}
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.height > 0 && m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// Cursor returns the cursor index.
func (m *Model) Cursor() int {
	return m.cursor
}

// MoveCursor moves the cursor by delta, clamped to the row count.
func (m *Model) MoveCursor(delta, rowCount int) {
	if rowCount == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= rowCount {
		m.cursor = rowCount - 1
	}
	m.ensureVisible()
}

// ClampCursor pulls the cursor back into range after the list shrank.
func (m *Model) ClampCursor(rowCount int) {
	if m.cursor >= rowCount {
		m.cursor = rowCount - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.height <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// View renders the visible rows.
func (m *Model) View(rows []Row) string {
	if len(rows) == 0 {
		return dimStyle.Render("  Drop audio files here to build a playlist")
	}

	var b strings.Builder
	end := len(rows)
	if m.height > 0 && m.offset+m.height < end {
		end = m.offset + m.height
	}

	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i, rows[i]))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderRow(index int, row Row) string {
	marker := "  "
	switch {
	case row.Current:
		marker = "▶ "
	case row.Selected:
		marker = "✓ "
	}

	line := fmt.Sprintf("%s%s", marker, row.Track.Title)
	if row.Track.Artist != "" {
		line += dimStyle.Render(" — " + row.Track.Artist)
	}

	dur := formatDuration(row.Track.Duration)
	pad := m.width - lipgloss.Width(line) - lipgloss.Width(dur) - 1
	if pad < 1 {
		pad = 1
	}
	line += strings.Repeat(" ", pad) + dimStyle.Render(dur)

	switch {
	case index == m.cursor:
		return cursorStyle.Render(line)
	case row.Current:
		return currentStyle.Render(line)
	case row.Selected:
		return selectedStyle.Render(line)
	default:
		return line
	}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
