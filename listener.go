package keygrab

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Config carries optional settings shared by Listener and Manager.
type Config struct {
	// Logger receives structured lifecycle and registration logs. Nil
	// disables logging.
	Logger *zerolog.Logger
}

func (c Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	return zerolog.Nop()
}

// platformSource is one native capture session. Closing it stops the OS
// callback and its polling thread.
type platformSource interface {
	Close() error
}

// Listener streams normalized key and modifier transitions from the OS.
// It observes only; nothing is blocked. Use a Manager to register hotkeys
// and suppress them.
type Listener struct {
	state  *listenerState
	source platformSource
	log    zerolog.Logger
	closed atomic.Bool
}

// NewListener starts system-wide input capture. On macOS this requires
// the Accessibility permission and fails with ErrAccessibilityNotGranted
// without it.
func NewListener(cfg Config) (*Listener, error) {
	return newListener(cfg, nil)
}

func newListener(cfg Config, blocking *BlockingSet) (*Listener, error) {
	log := cfg.logger()
	state := newListenerState(blocking)

	source, err := openPlatformSource(state, log)
	if err != nil {
		return nil, err
	}

	log.Debug().Bool("blocking", blocking != nil).Msg("input capture started")
	return &Listener{state: state, source: source, log: log}, nil
}

// Recv blocks until the next event. It returns ErrEventLoopNotRunning
// once the listener is closed and drained.
func (l *Listener) Recv() (KeyEvent, error) {
	return l.state.queue.recv()
}

// RecvTimeout waits up to d for the next event and returns ErrTimeout if
// none arrived.
func (l *Listener) RecvTimeout(d time.Duration) (KeyEvent, error) {
	return l.state.queue.recvTimeout(d)
}

// TryRecv returns the next event without waiting.
func (l *Listener) TryRecv() (KeyEvent, bool) {
	return l.state.queue.tryRecv()
}

// Close stops capture and wakes any pending receives. It is safe to call
// more than once.
func (l *Listener) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	var err error
	if l.source != nil {
		err = l.source.Close()
	}
	l.state.queue.close()
	l.log.Debug().Msg("input capture stopped")
	return err
}
