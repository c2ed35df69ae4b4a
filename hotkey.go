package keygrab

import (
	"fmt"
	"runtime"
	"strings"
)

// HotkeyID uniquely identifies a registered hotkey within a Manager.
// Ids increase monotonically and are never reused.
type HotkeyID uint32

// Hotkey is a combination of modifiers and at most one key. A hotkey with
// Key set to KeyNone is modifier-only; one with empty Mods is key-only.
// The zero value (no modifiers, no key) is not a valid hotkey.
type Hotkey struct {
	Mods Modifiers
	Key  Key
}

// NewHotkey builds a hotkey from modifiers and a key. At least one of the
// two must be non-empty.
func NewHotkey(mods Modifiers, key Key) (Hotkey, error) {
	if mods.IsEmpty() && key == KeyNone {
		return Hotkey{}, ErrEmptyHotkey
	}
	return Hotkey{Mods: mods, Key: key}, nil
}

// ParseHotkey parses text like "Cmd+Shift+K", "Ctrl+Space", "F1" or
// "Cmd+Shift". Tokens are separated by "+", matched case-insensitively,
// and may appear in any order; at most one token may name a key.
func ParseHotkey(s string) (Hotkey, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Hotkey{}, ErrEmptyHotkey
	}

	var mods Modifiers
	key := KeyNone

	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := parseModifierToken(part); ok {
			mods |= mod
			continue
		}
		if key != KeyNone {
			return Hotkey{}, fmt.Errorf("%w: multiple keys, already have %s, found %q", ErrInvalidHotkey, key, part)
		}
		k, err := ParseKey(part)
		if err != nil {
			return Hotkey{}, err
		}
		key = k
	}

	return NewHotkey(mods, key)
}

// String renders the hotkey in canonical form, e.g. "Cmd+Shift+K".
func (h Hotkey) String() string {
	switch {
	case h.Mods.IsEmpty() && h.Key == KeyNone:
		return "(none)"
	case h.Mods.IsEmpty():
		return h.Key.String()
	case h.Key == KeyNone:
		return h.Mods.String()
	}
	return h.Mods.String() + "+" + h.Key.String()
}

// PlatformString renders the hotkey lowercased with the modifier
// vocabulary of the current platform: command/option on macOS, super/alt
// elsewhere. Fn is only rendered on macOS.
func (h Hotkey) PlatformString() string {
	return h.platformString(runtime.GOOS)
}

func (h Hotkey) platformString(goos string) string {
	var parts []string
	for _, mod := range []Modifiers{ModCtrl, ModOpt, ModShift, ModCmd, ModFn} {
		if !h.Mods.Has(mod) {
			continue
		}
		if name := platformModifierName(mod, goos); name != "" {
			parts = append(parts, name)
		}
	}
	if h.Key != KeyNone {
		parts = append(parts, strings.ToLower(h.Key.String()))
	}
	return strings.Join(parts, "+")
}

// HotkeyState says whether a hotkey event is a press or a release.
type HotkeyState int

const (
	Pressed HotkeyState = iota
	Released
)

func (s HotkeyState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	}
	return "unknown"
}

// HotkeyEvent is emitted by a Manager when a registered hotkey changes
// state.
type HotkeyEvent struct {
	ID    HotkeyID
	State HotkeyState
}

// KeyEvent is one normalized key or modifier transition as streamed by a
// Listener.
type KeyEvent struct {
	// Mods is the modifier snapshot after this transition.
	Mods Modifiers
	// Key is the key or mouse button that changed, or KeyNone for a
	// modifier transition.
	Key Key
	// Down is true for presses, false for releases.
	Down bool
	// ChangedMod names the modifier that changed for modifier
	// transitions. Zero for regular key events.
	ChangedMod Modifiers
}

// AsHotkey converts the event into a hotkey definition, typically at the
// end of a recording flow.
func (e KeyEvent) AsHotkey() (Hotkey, error) {
	return NewHotkey(e.Mods, e.Key)
}
