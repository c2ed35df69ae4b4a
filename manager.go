package keygrab

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// recvInterval bounds the worker's wait so it observes Close promptly.
const recvInterval = 100 * time.Millisecond

// Manager matches captured input against registered hotkeys and emits
// edge-triggered Pressed/Released events. Registered combinations are
// added to the blocking set and suppressed from other applications.
type Manager struct {
	mu      sync.Mutex
	hotkeys map[HotkeyID]Hotkey
	pressed map[HotkeyID]struct{}
	nextID  uint32

	events   *eventQueue[HotkeyEvent]
	listener *Listener
	blocking *BlockingSet
	running  atomic.Bool
	wg       sync.WaitGroup
	log      zerolog.Logger
}

// NewManager starts input capture and the matching worker.
func NewManager(cfg Config) (*Manager, error) {
	blocking := NewBlockingSet()
	listener, err := newListener(cfg, blocking)
	if err != nil {
		return nil, err
	}
	return newManagerWithListener(listener, blocking, cfg), nil
}

func newManagerWithListener(listener *Listener, blocking *BlockingSet, cfg Config) *Manager {
	m := &Manager{
		hotkeys:  make(map[HotkeyID]Hotkey),
		pressed:  make(map[HotkeyID]struct{}),
		events:   newEventQueue[HotkeyEvent](),
		listener: listener,
		blocking: blocking,
		log:      cfg.logger(),
	}
	m.running.Store(true)
	m.wg.Add(1)
	go m.eventLoop()
	return m
}

// Register adds a hotkey and returns its id. The same combination cannot
// be registered twice.
func (m *Manager) Register(h Hotkey) (HotkeyID, error) {
	if h.Mods.IsEmpty() && h.Key == KeyNone {
		return 0, ErrEmptyHotkey
	}

	m.mu.Lock()
	for id, existing := range m.hotkeys {
		if existing == h {
			m.mu.Unlock()
			return 0, fmt.Errorf("%w: %s (id %d)", ErrAlreadyRegistered, h, id)
		}
	}
	id := HotkeyID(m.nextID)
	m.nextID++
	m.hotkeys[id] = h
	m.mu.Unlock()

	m.blocking.Add(h)
	m.log.Debug().Str("hotkey", h.String()).Uint32("id", uint32(id)).Msg("hotkey registered")
	return id, nil
}

// Unregister removes a hotkey by id. A pressed hotkey is dropped without
// emitting a Released event.
func (m *Manager) Unregister(id HotkeyID) error {
	m.mu.Lock()
	h, ok := m.hotkeys[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: id %d", ErrHotkeyNotFound, id)
	}
	delete(m.hotkeys, id)
	delete(m.pressed, id)
	m.mu.Unlock()

	m.blocking.Remove(h)
	m.log.Debug().Str("hotkey", h.String()).Uint32("id", uint32(id)).Msg("hotkey unregistered")
	return nil
}

// Get returns the hotkey registered under id.
func (m *Manager) Get(id HotkeyID) (Hotkey, bool) {
	m.mu.Lock()
	h, ok := m.hotkeys[id]
	m.mu.Unlock()
	return h, ok
}

// Count returns the number of registered hotkeys.
func (m *Manager) Count() int {
	m.mu.Lock()
	n := len(m.hotkeys)
	m.mu.Unlock()
	return n
}

// Recv blocks until the next hotkey event. It returns
// ErrEventLoopNotRunning once the manager is closed and drained.
func (m *Manager) Recv() (HotkeyEvent, error) {
	return m.events.recv()
}

// RecvTimeout waits up to d for the next hotkey event.
func (m *Manager) RecvTimeout(d time.Duration) (HotkeyEvent, error) {
	return m.events.recvTimeout(d)
}

// TryRecv returns the next hotkey event without waiting.
func (m *Manager) TryRecv() (HotkeyEvent, bool) {
	return m.events.tryRecv()
}

// Close stops the worker and the underlying capture. Safe to call more
// than once.
func (m *Manager) Close() error {
	if !m.running.CompareAndSwap(true, false) {
		return nil
	}
	err := m.listener.Close()
	m.wg.Wait()
	m.events.close()
	m.log.Debug().Msg("hotkey manager stopped")
	return err
}

func (m *Manager) eventLoop() {
	defer m.wg.Done()
	for m.running.Load() {
		ev, err := m.listener.RecvTimeout(recvInterval)
		switch {
		case err == nil:
			for _, hke := range m.processEvent(ev) {
				m.events.push(hke)
			}
		case err == ErrTimeout:
			// idle, re-check the running flag
		default:
			return
		}
	}
}

// processEvent applies the match rules to one transition.
//
// Down events press every released hotkey whose modifiers and key both
// equal the event's. Up events release a pressed hotkey when its key was
// released, or, for modifier transitions, when the remaining snapshot no
// longer contains all of its modifiers. Repeated downs while pressed emit
// nothing.
func (m *Manager) processEvent(ev KeyEvent) []HotkeyEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []HotkeyEvent
	if ev.Down {
		for id, h := range m.hotkeys {
			if _, isPressed := m.pressed[id]; isPressed {
				continue
			}
			if h.Mods == ev.Mods && h.Key == ev.Key {
				m.pressed[id] = struct{}{}
				out = append(out, HotkeyEvent{ID: id, State: Pressed})
			}
		}
	} else {
		for id := range m.pressed {
			h := m.hotkeys[id]
			if h.Key == ev.Key || (ev.Key == KeyNone && !ev.Mods.Contains(h.Mods)) {
				delete(m.pressed, id)
				out = append(out, HotkeyEvent{ID: id, State: Released})
			}
		}
	}
	return out
}
