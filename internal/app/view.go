package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simonbasler/minplayer/internal/keymap"
	"github.com/simonbasler/minplayer/internal/ui/playerbar"
	"github.com/simonbasler/minplayer/internal/ui/playlistview"
)

var helpHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// View renders the playlist above the transport bar, or the help screen.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	if m.showHelp {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.helpView(),
			playerbar.View(m.ctrl.Snapshot(), m.width),
		)
	}

	tracks := m.ctrl.Tracks()
	current := m.ctrl.CurrentIndex()
	rows := make([]playlistview.Row, len(tracks))
	for i, t := range tracks {
		rows[i] = playlistview.Row{
			Track:    t,
			Current:  i == current,
			Selected: m.ctrl.IsSelected(i),
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.list.View(rows),
		playerbar.View(m.ctrl.Snapshot(), m.width),
	)
}

// helpView lists the key bindings grouped by context.
func (m Model) helpView() string {
	var b strings.Builder
	for _, context := range []string{"global", "playback", "playlist"} {
		b.WriteString(helpHeaderStyle.Render(strings.ToUpper(context)))
		b.WriteString("\n")
		for _, binding := range keymap.ByContext(context) {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", strings.Join(binding.Keys, ", "), binding.Description))
		}
		b.WriteString("\n")
	}
	b.WriteString("Press ? or esc to close")
	return b.String()
}
