package keygrab

import "sync"

// listenerState is the normalizer shared between the native callback and
// the consumer side of a listener. Each entry point runs inside the OS
// callback and must stay fast: short critical sections, never more than
// one lock held at a time, and pushes to the queue never block.
type listenerState struct {
	mu      sync.Mutex
	mods    Modifiers
	blocked map[Key]bool // keys whose down transition was suppressed

	queue    *eventQueue[KeyEvent]
	blocking *BlockingSet // nil when observing only
}

func newListenerState(blocking *BlockingSet) *listenerState {
	return &listenerState{
		blocked:  make(map[Key]bool),
		queue:    newEventQueue[KeyEvent](),
		blocking: blocking,
	}
}

// snapshot returns the current modifier mask.
func (s *listenerState) snapshot() Modifiers {
	s.mu.Lock()
	mods := s.mods
	s.mu.Unlock()
	return mods
}

// syncSnapshot replaces the tracked mask with an OS-reported one. Used on
// platforms where key events carry their own modifier flags.
func (s *listenerState) syncSnapshot(mods Modifiers) {
	s.mu.Lock()
	s.mods = mods
	s.mu.Unlock()
}

// shouldBlock reports whether the exact combination is in the blocking
// set.
func (s *listenerState) shouldBlock(mods Modifiers, key Key) bool {
	if s.blocking == nil {
		return false
	}
	return s.blocking.Contains(Hotkey{Mods: mods, Key: key})
}

// keyTransition handles a non-modifier key or mouse button change and
// reports whether the native event should be suppressed. The decision made
// on key-down is remembered and replayed on the matching key-up, so a
// combination stays blocked even if its modifiers were released first.
func (s *listenerState) keyTransition(key Key, down bool) bool {
	mods := s.snapshot()

	var block bool
	if down {
		block = s.shouldBlock(mods, key)
		if block {
			s.mu.Lock()
			s.blocked[key] = true
			s.mu.Unlock()
		}
	} else {
		s.mu.Lock()
		block = s.blocked[key]
		delete(s.blocked, key)
		s.mu.Unlock()
	}

	s.queue.push(KeyEvent{Mods: mods, Key: key, Down: down})
	return block
}

// modifierTransition handles a modifier key change on platforms that
// report plain down/up transitions. Auto-repeat of a held modifier leaves
// the mask unchanged and emits nothing.
func (s *listenerState) modifierTransition(mod Modifiers, down bool) bool {
	s.mu.Lock()
	prev := s.mods
	next := prev
	if down {
		next |= mod
	} else {
		next &^= mod
	}
	s.mods = next
	s.mu.Unlock()

	if next == prev {
		return false
	}

	var block bool
	if down {
		block = s.shouldBlock(next, KeyNone)
	}
	s.queue.push(KeyEvent{Mods: next, Key: KeyNone, Down: down, ChangedMod: mod})
	return block
}

// flagsTransition handles a modifier change on platforms that deliver a
// full snapshot per event (macOS FlagsChanged). The transition direction
// is derived from the gained bits; an unchanged snapshot is a repeat and
// emits nothing.
func (s *listenerState) flagsTransition(snapshot, changed Modifiers) bool {
	s.mu.Lock()
	prev := s.mods
	s.mods = snapshot
	s.mu.Unlock()

	if snapshot == prev {
		return false
	}

	down := snapshot&^prev != 0
	var block bool
	if down {
		block = s.shouldBlock(snapshot, KeyNone)
	}
	s.queue.push(KeyEvent{Mods: snapshot, Key: KeyNone, Down: down, ChangedMod: changed})
	return block
}

// lockTransition handles a lock key delivered on the modifier channel
// (CapsLock on macOS). It is surfaced as a plain key event whose direction
// comes from the toggled lock flag.
func (s *listenerState) lockTransition(key Key, snapshot Modifiers, down bool) bool {
	s.syncSnapshot(snapshot)
	block := s.shouldBlock(snapshot, key)
	s.queue.push(KeyEvent{Mods: snapshot, Key: key, Down: down})
	return block
}
