// Package app is the Bubble Tea model tying the transport, persistence and
// rendering together. All playback decisions live in the transport; the app
// only translates terminal input into transport calls and repaints on events.
package app

import (
	"github.com/charmbracelet/log"

	"github.com/simonbasler/minplayer/internal/config"
	"github.com/simonbasler/minplayer/internal/notify"
	"github.com/simonbasler/minplayer/internal/state"
	"github.com/simonbasler/minplayer/internal/transport"
	"github.com/simonbasler/minplayer/internal/ui/playlistview"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root Bubble Tea model.
type Model struct {
	ctrl     *transport.Controller
	sub      *transport.Subscription
	stateMgr *state.Manager
	notifier notify.Notifier
	cfg      *config.Config
	log      *log.Logger

	list     playlistview.Model
	width    int
	height   int
	showHelp bool

	initialPaths []string
	session      *state.Session

	lastNotifyID uint32
}

// New creates the app model. initialPaths are files given on the command
// line; session is the saved playlist to restore, or nil.
func New(
	ctrl *transport.Controller,
	stateMgr *state.Manager,
	notifier notify.Notifier,
	cfg *config.Config,
	logger *log.Logger,
	initialPaths []string,
	session *state.Session,
) Model {
	return Model{
		ctrl:         ctrl,
		sub:          ctrl.Subscribe(),
		stateMgr:     stateMgr,
		notifier:     notifier,
		cfg:          cfg,
		log:          logger,
		list:         playlistview.New(),
		initialPaths: initialPaths,
		session:      session,
	}
}

// Init starts the transport event pump and the initial ingestion work.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForTransport(m.sub)}
	if m.session != nil {
		cmds = append(cmds, restoreCmd(m.session))
	}
	if len(m.initialPaths) > 0 {
		cmds = append(cmds, ingestCmd(m.initialPaths))
	}
	return tea.Batch(cmds...)
}
