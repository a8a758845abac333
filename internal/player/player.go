// Package player wraps the beep speaker as a single audio playback device.
// It decodes from an in-memory source, exposes transport primitives, and
// reports position and end-of-track on an event channel. The track duration
// is a synchronous query, valid once Load returns.
package player

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrNothingLoaded is returned by Play when no track has been loaded.
var ErrNothingLoaded = errors.New("nothing loaded")

// Source is the playable input a handle must provide. The device never closes
// the source; its lifecycle belongs to the resource manager.
type Source interface {
	io.ReadSeeker
	Ext() string
	Path() string
}

// Device is the playback contract the transport controller depends on.
type Device interface {
	Load(src Source) error
	Play() error
	Pause()
	Stop()
	SeekTo(pos time.Duration)
	SetVolume(level float64)
	Volume() float64
	State() State
	Position() time.Duration
	Duration() time.Duration
	Events() <-chan Event
	Close()
}

// Player is the beep-backed Device implementation.
type Player struct {
	mu sync.Mutex

	state    State
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	streamer beep.StreamSeekCloser
	format   beep.Format

	volumeLevel float64
	serial      uint64 // invalidates finish callbacks from superseded loads

	events chan Event
	done   chan struct{}
}

var (
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// positionInterval is how often the device reports its position while playing.
const positionInterval = 500 * time.Millisecond

// New creates a player and starts its position reporter.
func New() *Player {
	p := &Player{
		state:       Stopped,
		volumeLevel: 1.0,
		events:      make(chan Event, eventBufferSize),
		done:        make(chan struct{}),
	}
	go p.positionLoop()
	return p
}

// Events returns the device notification channel.
func (p *Player) Events() <-chan Event {
	return p.events
}

// Load stops any current playback and prepares the source for Play. The
// track starts paused; playback begins only when Play is called and succeeds.
func (p *Player) Load(src Source) error {
	p.Stop()

	streamer, format, err := decode(src)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !speakerInitialized {
		speakerSampleRate = format.SampleRate
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		speakerInitialized = true
	}

	p.streamer = streamer
	p.format = format

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: levelToVolume(p.volumeLevel), Silent: p.volumeLevel <= 0}

	p.serial++
	serial := p.serial
	p.state = Paused

	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		p.finished(serial)
	})))
	return nil
}

// finished handles the beep end-of-stream callback. Callbacks left over from
// a superseded load carry a stale serial and are ignored.
func (p *Player) finished(serial uint64) {
	p.mu.Lock()
	if serial != p.serial || p.state != Playing {
		p.mu.Unlock()
		return
	}
	p.state = Stopped
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
	p.mu.Unlock()

	p.emit(EndedEvent{})
}

// decode builds a streamer for the source based on its extension. Formats in
// the ingest allow-list without a wired decoder fail here into the caller's
// error path.
func decode(src Source) (beep.StreamSeekCloser, beep.Format, error) {
	rc := nopCloser{src}
	switch src.Ext() {
	case ".mp3":
		return mp3.Decode(rc)
	case ".flac":
		// Skip ID3v2 tags some taggers prepend; the FLAC decoder rejects them.
		if err := skipID3v2(src); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(rc)
	case ".wav":
		return wav.Decode(rc)
	case ".ogg":
		return vorbis.Decode(rc)
	default:
		return nil, beep.Format{}, fmt.Errorf("no decoder for %s", src.Ext())
	}
}

// nopCloser adapts a Source to the io.ReadSeekCloser the beep decoders want
// without handing them ownership of the buffer.
type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() error { return nil }

// skipID3v2 advances past an ID3v2 tag if one is present at the start.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			// Shorter than a tag header; rewind and let the decoder decide.
			_, err = r.Seek(0, io.SeekStart)
			return err
		}
		return err
	}
	if string(header[0:3]) != "ID3" {
		_, err := r.Seek(0, io.SeekStart)
		return err
	}

	// ID3v2 size is a syncsafe integer in bytes 6-9 (7 bits per byte)
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err := r.Seek(10+size, io.SeekStart)
	return err
}

// positionLoop reports the playback position while playing.
func (p *Player) positionLoop() {
	t := time.NewTicker(positionInterval)
	defer t.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-t.C:
			p.mu.Lock()
			playing := p.state == Playing
			p.mu.Unlock()
			if playing {
				p.emit(PositionEvent{Position: p.Position()})
			}
		}
	}
}

// Close stops playback and the position reporter.
func (p *Player) Close() {
	p.Stop()
	select {
	case <-p.done:
	default:
		close(p.done)
	}
}

// Verify Player implements Device at compile time.
var _ Device = (*Player)(nil)
