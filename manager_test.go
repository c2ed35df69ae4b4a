package keygrab

import (
	"errors"
	"testing"
	"time"
)

// newTestManager builds a manager over a listener with no platform
// source; tests feed canonical events straight into the listener queue.
func newTestManager() (*Manager, *listenerState) {
	blocking := NewBlockingSet()
	listener := &Listener{state: newListenerState(blocking)}
	m := newManagerWithListener(listener, blocking, Config{})
	return m, listener.state
}

func mustRegister(t *testing.T, m *Manager, h Hotkey) HotkeyID {
	t.Helper()
	id, err := m.Register(h)
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", h, err)
	}
	return id
}

func TestRegisterAssignsMonotonicIDs(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()

	id1 := mustRegister(t, m, Hotkey{Mods: ModCmd, Key: KeyK})
	id2 := mustRegister(t, m, Hotkey{Mods: ModCmd, Key: KeyJ})
	id3 := mustRegister(t, m, Hotkey{Mods: ModCtrl})

	if !(id1 < id2 && id2 < id3) {
		t.Errorf("ids not increasing: %d %d %d", id1, id2, id3)
	}
	if m.Count() != 3 {
		t.Errorf("Count = %d", m.Count())
	}
	if h, ok := m.Get(id2); !ok || h.Key != KeyJ {
		t.Errorf("Get(%d) = %+v, %v", id2, h, ok)
	}
}

func TestRegisterDuplicateFails(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()

	h := Hotkey{Mods: ModCmd | ModShift, Key: KeyK}
	mustRegister(t, m, h)
	if _, err := m.Register(h); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestRegisterEmptyFails(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()

	if _, err := m.Register(Hotkey{}); !errors.Is(err, ErrEmptyHotkey) {
		t.Errorf("expected ErrEmptyHotkey, got %v", err)
	}
}

func TestRegisterMaintainsBlockingSet(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()

	h := Hotkey{Mods: ModCmd, Key: KeyK}
	id := mustRegister(t, m, h)
	if !m.blocking.Contains(h) {
		t.Error("registered hotkey missing from blocking set")
	}

	if err := m.Unregister(id); err != nil {
		t.Fatal(err)
	}
	if m.blocking.Contains(h) {
		t.Error("unregistered hotkey still in blocking set")
	}
	if m.Count() != 0 {
		t.Errorf("Count = %d", m.Count())
	}
}

func TestUnregisterUnknownFails(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()

	if err := m.Unregister(99); !errors.Is(err, ErrHotkeyNotFound) {
		t.Errorf("expected ErrHotkeyNotFound, got %v", err)
	}
}

func TestProcessEventExactMatch(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()
	id := mustRegister(t, m, Hotkey{Mods: ModCmd, Key: KeyK})

	events := m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyK, Down: true})
	if len(events) != 1 || events[0].ID != id || events[0].State != Pressed {
		t.Fatalf("got %+v", events)
	}

	events = m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyK, Down: false})
	if len(events) != 1 || events[0].ID != id || events[0].State != Released {
		t.Fatalf("got %+v", events)
	}
}

func TestProcessEventSupersetDoesNotMatch(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()
	mustRegister(t, m, Hotkey{Mods: ModCmd, Key: KeyK})

	events := m.processEvent(KeyEvent{Mods: ModCmd | ModShift, Key: KeyK, Down: true})
	if len(events) != 0 {
		t.Fatalf("superset matched: %+v", events)
	}
}

func TestProcessEventRepeatIsIdempotent(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()
	mustRegister(t, m, Hotkey{Mods: ModCmd, Key: KeyK})

	down := KeyEvent{Mods: ModCmd, Key: KeyK, Down: true}
	if events := m.processEvent(down); len(events) != 1 {
		t.Fatalf("first down: %+v", events)
	}
	// Auto-repeat delivers further downs while pressed.
	if events := m.processEvent(down); len(events) != 0 {
		t.Fatalf("repeat down emitted: %+v", events)
	}
	up := KeyEvent{Mods: ModCmd, Key: KeyK, Down: false}
	if events := m.processEvent(up); len(events) != 1 || events[0].State != Released {
		t.Fatalf("up: %+v", events)
	}
	// A second up has nothing left to release.
	if events := m.processEvent(up); len(events) != 0 {
		t.Fatalf("second up emitted: %+v", events)
	}
}

func TestProcessEventKeyUpReleasesRegardlessOfMods(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()
	mustRegister(t, m, Hotkey{Mods: ModCmd, Key: KeyK})

	m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyK, Down: true})
	// Cmd released before K: the key-up no longer carries Cmd.
	events := m.processEvent(KeyEvent{Mods: 0, Key: KeyK, Down: false})
	if len(events) != 1 || events[0].State != Released {
		t.Fatalf("got %+v", events)
	}
}

func TestProcessEventOtherKeyUpDoesNotRelease(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()
	mustRegister(t, m, Hotkey{Mods: ModCmd, Key: KeyK})

	m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyK, Down: true})
	if events := m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyJ, Down: false}); len(events) != 0 {
		t.Fatalf("unrelated key-up released: %+v", events)
	}
}

func TestProcessEventModifierReleaseRule(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()
	mustRegister(t, m, Hotkey{Mods: ModCmd | ModShift, Key: KeyK})

	m.processEvent(KeyEvent{Mods: ModCmd | ModShift, Key: KeyK, Down: true})

	// Dropping Shift leaves Cmd only; the hotkey's modifiers are no
	// longer contained and it releases.
	events := m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyNone, Down: false, ChangedMod: ModShift})
	if len(events) != 1 || events[0].State != Released {
		t.Fatalf("got %+v", events)
	}
}

func TestProcessEventModifierOnlyHotkey(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()
	id := mustRegister(t, m, Hotkey{Mods: ModCmd | ModShift})

	// Building up the combination: partial snapshot does not match.
	if events := m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyNone, Down: true, ChangedMod: ModCmd}); len(events) != 0 {
		t.Fatalf("partial matched: %+v", events)
	}
	events := m.processEvent(KeyEvent{Mods: ModCmd | ModShift, Key: KeyNone, Down: true, ChangedMod: ModShift})
	if len(events) != 1 || events[0].ID != id || events[0].State != Pressed {
		t.Fatalf("got %+v", events)
	}

	events = m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyNone, Down: false, ChangedMod: ModShift})
	if len(events) != 1 || events[0].State != Released {
		t.Fatalf("got %+v", events)
	}
}

func TestProcessEventUnregisterWhilePressed(t *testing.T) {
	m, _ := newTestManager()
	defer m.Close()
	id := mustRegister(t, m, Hotkey{Mods: ModCmd, Key: KeyK})

	m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyK, Down: true})
	if err := m.Unregister(id); err != nil {
		t.Fatal(err)
	}
	// The pressed entry went with the registration: no orphan release.
	if events := m.processEvent(KeyEvent{Mods: ModCmd, Key: KeyK, Down: false}); len(events) != 0 {
		t.Fatalf("released after unregister: %+v", events)
	}
}

func TestManagerEndToEnd(t *testing.T) {
	m, state := newTestManager()
	defer m.Close()
	id := mustRegister(t, m, Hotkey{Mods: ModCtrl, Key: KeySpace})

	// Simulate the platform callback.
	state.modifierTransition(ModCtrl, true)
	state.keyTransition(KeySpace, true)
	state.keyTransition(KeySpace, false)
	state.modifierTransition(ModCtrl, false)

	ev, err := m.RecvTimeout(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if ev.ID != id || ev.State != Pressed {
		t.Fatalf("got %+v", ev)
	}

	ev, err = m.RecvTimeout(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if ev.ID != id || ev.State != Released {
		t.Fatalf("got %+v", ev)
	}

	if _, ok := m.TryRecv(); ok {
		t.Error("no further events expected")
	}
}

func TestManagerCloseWakesReceiver(t *testing.T) {
	m, _ := newTestManager()

	errCh := make(chan error, 1)
	go func() {
		_, err := m.Recv()
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrEventLoopNotRunning) {
			t.Fatalf("expected ErrEventLoopNotRunning, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Recv not woken by Close")
	}

	// Close is idempotent.
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestListenerCloseEndsStream(t *testing.T) {
	blocking := NewBlockingSet()
	listener := &Listener{state: newListenerState(blocking)}

	listener.state.keyTransition(KeyA, true)
	if err := listener.Close(); err != nil {
		t.Fatal(err)
	}

	// Pending event still delivered, then the closed error.
	ev, err := listener.Recv()
	if err != nil || ev.Key != KeyA {
		t.Fatalf("got %+v, %v", ev, err)
	}
	if _, err := listener.Recv(); !errors.Is(err, ErrEventLoopNotRunning) {
		t.Fatalf("expected ErrEventLoopNotRunning, got %v", err)
	}
}
