package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonbasler/minplayer/internal/ingest"
	"github.com/simonbasler/minplayer/internal/playlist"
	"github.com/simonbasler/minplayer/internal/state"
	"github.com/simonbasler/minplayer/internal/transport"
)

// transportEventMsg wraps one event read from the transport subscription.
type transportEventMsg struct {
	event any
}

// tracksIngestedMsg delivers a processed batch of dropped files.
type tracksIngestedMsg struct {
	tracks []playlist.Track
}

// sessionRestoredMsg delivers the re-read tracks of a saved session.
type sessionRestoredMsg struct {
	tracks []playlist.Track
	index  int
}

// waitForTransport blocks on the subscription and converts whichever event
// arrives first into a message. Update re-issues it after every delivery.
func waitForTransport(sub *transport.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.StatusChanged:
			return transportEventMsg{event: e}
		case e := <-sub.TrackChanged:
			return transportEventMsg{event: e}
		case e := <-sub.PositionChanged:
			return transportEventMsg{event: e}
		case e := <-sub.QueueChanged:
			return transportEventMsg{event: e}
		case e := <-sub.VolumeChanged:
			return transportEventMsg{event: e}
		case e := <-sub.Error:
			return transportEventMsg{event: e}
		case <-sub.Done:
			return nil
		}
	}
}

// ingestCmd filters and reads metadata for a batch of paths off the UI loop.
func ingestCmd(paths []string) tea.Cmd {
	return func() tea.Msg {
		return tracksIngestedMsg{tracks: ingest.CollectTracks(paths)}
	}
}

// restoreCmd re-reads the saved session's files. Paths that disappeared since
// the last run are dropped by the ingest filter.
func restoreCmd(session *state.Session) tea.Cmd {
	paths := session.Paths
	index := session.CurrentIndex
	return func() tea.Msg {
		tracks := ingest.CollectTracks(paths)
		if index >= len(tracks) {
			index = -1
		}
		return sessionRestoredMsg{tracks: tracks, index: index}
	}
}
