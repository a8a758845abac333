package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonbasler/minplayer/internal/errmsg"
	"github.com/simonbasler/minplayer/internal/ingest"
	"github.com/simonbasler/minplayer/internal/notify"
	"github.com/simonbasler/minplayer/internal/state"
	"github.com/simonbasler/minplayer/internal/transport"
	"github.com/simonbasler/minplayer/internal/ui/playerbar"
)

// Update routes messages to the transport and keeps the cursor valid.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-playerbar.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case transportEventMsg:
		return m.handleTransportEvent(msg.event)

	case tracksIngestedMsg:
		if len(msg.tracks) > 0 {
			m.ctrl.Append(msg.tracks)
		}
		return m, nil

	case sessionRestoredMsg:
		if len(msg.tracks) > 0 {
			m.ctrl.Restore(msg.tracks, msg.index)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Bracketed paste delivers dropped or pasted file paths.
	if msg.Paste {
		paths := ingest.ParsePaths(string(msg.Runes))
		if len(paths) == 0 {
			return m, nil
		}
		return m, ingestCmd(paths)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ":
		m.ctrl.TogglePlay()

	case "left":
		m.ctrl.SeekBy(-m.cfg.SeekStep())
	case "right":
		m.ctrl.SeekBy(m.cfg.SeekStep())

	case "up":
		m.ctrl.AdjustVolume(m.cfg.VolumeStep)
	case "down":
		m.ctrl.AdjustVolume(-m.cfg.VolumeStep)

	case "n":
		m.ctrl.Next()
	case "p":
		m.ctrl.Previous()

	case "j":
		m.list.MoveCursor(1, m.ctrl.QueueLen())
	case "k":
		m.list.MoveCursor(-1, m.ctrl.QueueLen())

	case "enter":
		if m.ctrl.QueueLen() > 0 {
			m.ctrl.ClearSelection()
			m.ctrl.PlayTrack(m.list.Cursor())
		}

	case "?":
		m.showHelp = !m.showHelp

	case "x":
		if m.ctrl.QueueLen() > 0 {
			m.ctrl.ToggleSelect(m.list.Cursor())
			m.list.MoveCursor(1, m.ctrl.QueueLen())
		}
	case "ctrl+a":
		m.ctrl.SelectAll()
	case "esc":
		if m.showHelp {
			m.showHelp = false
		} else {
			m.ctrl.ClearSelection()
		}

	case "delete", "backspace":
		if m.ctrl.SelectionCount() > 0 {
			m.ctrl.DeleteSelected()
			m.list.ClampCursor(m.ctrl.QueueLen())
		}
	}

	return m, nil
}

func (m Model) handleTransportEvent(event any) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case transport.TrackChange:
		if e.Current != nil {
			m.notifyTrack(e)
		}
		m.saveSession()

	case transport.QueueChange:
		m.list.ClampCursor(e.Len)
		m.saveSession()

	case transport.VolumeChange:
		if err := m.stateMgr.SaveVolume(e.Volume); err != nil {
			m.log.Warn(errmsg.Format(errmsg.OpStateSave, err))
		}
	}

	// Every event repaints; re-arm the pump.
	return m, waitForTransport(m.sub)
}

func (m *Model) notifyTrack(e transport.TrackChange) {
	id, err := m.notifier.Notify(notify.Notification{
		Title:      e.Current.Title,
		Body:       fmt.Sprintf("%s - %s", e.Current.Artist, e.Current.Album),
		Timeout:    -1,
		ReplacesID: m.lastNotifyID,
		Urgency:    notify.UrgencyLow,
	})
	if err != nil {
		m.log.Debug("notification failed", "err", err)
		return
	}
	if id != 0 {
		m.lastNotifyID = id
	}
}

func (m Model) saveSession() {
	tracks := m.ctrl.Tracks()
	paths := make([]string, len(tracks))
	for i, t := range tracks {
		paths[i] = t.Path
	}
	m.stateMgr.SaveSession(state.Session{
		Paths:        paths,
		CurrentIndex: m.ctrl.CurrentIndex(),
	})
}
