package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/simonbasler/minplayer/internal/app"
	"github.com/simonbasler/minplayer/internal/config"
	"github.com/simonbasler/minplayer/internal/errmsg"
	"github.com/simonbasler/minplayer/internal/mpris"
	"github.com/simonbasler/minplayer/internal/notify"
	"github.com/simonbasler/minplayer/internal/player"
	"github.com/simonbasler/minplayer/internal/playlist"
	"github.com/simonbasler/minplayer/internal/resource"
	"github.com/simonbasler/minplayer/internal/state"
	"github.com/simonbasler/minplayer/internal/stderr"
	"github.com/simonbasler/minplayer/internal/transport"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, logFile, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	// Packages without an injected logger fall back to the default one.
	log.SetDefault(logger)

	if err := stderr.Capture(logger); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Restore()

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("opening state database: %w", err)
	}
	defer stateMgr.Close()

	volume, err := stateMgr.GetVolume(cfg.DefaultVolume)
	if err != nil {
		logger.Warn("reading saved volume", "err", err)
		volume = cfg.DefaultVolume
	}

	device := player.New()
	defer device.Close()

	ctrl := transport.New(
		device,
		resource.NewManager(),
		playlist.NewQueue(),
		transport.WithLogger(logger),
		transport.WithErrorTimeout(cfg.ErrorDisplay()),
		transport.WithVolume(volume),
	)
	defer ctrl.Close()

	if adapter, err := mpris.New(ctrl); err != nil {
		logger.Warn("mpris unavailable", "err", err)
	} else {
		defer adapter.Close()
	}

	notifier := notify.NewStub()
	if cfg.Notifications {
		if n, err := notify.New(); err != nil {
			logger.Warn("notifications unavailable", "err", err)
		} else {
			notifier = n
		}
	}

	// Command-line files take precedence over the saved session.
	var session *state.Session
	if cfg.RestoreSession && len(args) == 0 {
		session, err = stateMgr.GetSession()
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpQueueRestore, err))
		}
	}

	m := app.New(ctrl, stateMgr, notifier, cfg, logger, args, session)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

func setupLogger(cfg *config.Config) (*log.Logger, *os.File, error) {
	var w io.Writer = io.Discard
	var f *os.File
	if cfg.LogFile != "" {
		var err error
		f, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, f, nil
}
