package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"github.com/petems/keygrab"
	"github.com/petems/keygrab/internal/config"
)

// HotkeyService is the slice of keygrab.Manager the app depends on.
type HotkeyService interface {
	Register(keygrab.Hotkey) (keygrab.HotkeyID, error)
	Unregister(keygrab.HotkeyID) error
	RecvTimeout(time.Duration) (keygrab.HotkeyEvent, error)
	Close() error
}

// StatusUpdater is an interface for reflecting hotkey state in the UI
// (e.g., tray menu). Optional.
type StatusUpdater interface {
	SetPressed(name string)
	SetReleased(name string)
}

// Notifier sends a desktop notification.
type Notifier func(title, body string) error

type Config struct {
	Hotkeys       HotkeyService
	Config        *config.Config
	Logger        zerolog.Logger
	StatusUpdater StatusUpdater // Optional - can be nil
	Notifier      Notifier      // Optional - defaults to desktop notifications
}

// App wires configured hotkey bindings to the manager and dispatches the
// resulting events to the UI and notifications.
type App struct {
	hk     HotkeyService
	cfg    *config.Config
	log    zerolog.Logger
	status StatusUpdater
	notify Notifier

	mu       sync.Mutex
	bindings map[keygrab.HotkeyID]config.Binding
	pressed  map[string]bool
}

func New(cfg Config) *App {
	notify := cfg.Notifier
	if notify == nil {
		notify = func(title, body string) error {
			return beeep.Notify(title, body, "")
		}
	}
	return &App{
		hk:       cfg.Hotkeys,
		cfg:      cfg.Config,
		log:      cfg.Logger,
		status:   cfg.StatusUpdater,
		notify:   notify,
		bindings: make(map[keygrab.HotkeyID]config.Binding),
		pressed:  make(map[string]bool),
	}
}

// RegisterBindings parses and registers every configured binding.
func (a *App) RegisterBindings() error {
	for _, b := range a.cfg.Bindings {
		hotkey, err := keygrab.ParseHotkey(b.PlatformHotkey())
		if err != nil {
			return fmt.Errorf("binding %q: %w", b.Name, err)
		}
		id, err := a.hk.Register(hotkey)
		if err != nil {
			return fmt.Errorf("binding %q: %w", b.Name, err)
		}

		a.mu.Lock()
		a.bindings[id] = b
		a.mu.Unlock()

		a.log.Info().Str("name", b.Name).Str("hotkey", hotkey.String()).Msg("Registered binding")
	}
	return nil
}

// BindingNames returns the configured binding names in config order.
func (a *App) BindingNames() []string {
	names := make([]string, 0, len(a.cfg.Bindings))
	for _, b := range a.cfg.Bindings {
		names = append(names, b.Name)
	}
	return names
}

// IsPressed reports whether the named binding is currently held.
func (a *App) IsPressed(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pressed[name]
}

// Run drains hotkey events until the context is cancelled or the manager
// is closed.
func (a *App) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		ev, err := a.hk.RecvTimeout(200 * time.Millisecond)
		switch {
		case err == nil:
			a.dispatch(ev)
		case errors.Is(err, keygrab.ErrTimeout):
			// idle
		case errors.Is(err, keygrab.ErrEventLoopNotRunning):
			return nil
		default:
			return err
		}
	}
}

func (a *App) dispatch(ev keygrab.HotkeyEvent) {
	a.mu.Lock()
	binding, ok := a.bindings[ev.ID]
	if ok {
		a.pressed[binding.Name] = ev.State == keygrab.Pressed
	}
	a.mu.Unlock()

	if !ok {
		a.log.Warn().Uint32("id", uint32(ev.ID)).Msg("Event for unknown binding")
		return
	}

	a.log.Info().Str("name", binding.Name).Stringer("state", ev.State).Msg("Hotkey")

	if a.status != nil {
		if ev.State == keygrab.Pressed {
			a.status.SetPressed(binding.Name)
		} else {
			a.status.SetReleased(binding.Name)
		}
	}

	if binding.Notify && ev.State == keygrab.Pressed {
		if err := a.notify("keygrab", fmt.Sprintf("%s pressed", binding.Name)); err != nil {
			a.log.Error().Err(err).Msg("Notification failed")
		}
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.hk.Close()
}
