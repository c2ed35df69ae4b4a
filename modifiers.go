package keygrab

import (
	"fmt"
	"strings"
)

// Modifiers is a bitmask of held modifier keys. Left and right variants of
// the same modifier fold into a single bit.
type Modifiers uint32

const (
	ModCmd Modifiers = 1 << iota
	ModShift
	ModCtrl
	ModOpt
	ModFn
)

// displayOrder fixes the order modifiers appear in String output.
var displayOrder = []struct {
	mod  Modifiers
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModOpt, "Opt"},
	{ModShift, "Shift"},
	{ModCmd, "Cmd"},
	{ModFn, "Fn"},
}

// Has reports whether any of the given bits are set.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// Contains reports whether every bit of other is set in m.
func (m Modifiers) Contains(other Modifiers) bool {
	return m&other == other
}

// IsEmpty reports whether no modifier is held.
func (m Modifiers) IsEmpty() bool {
	return m == 0
}

// String renders the held modifiers joined by "+", in Ctrl, Opt, Shift,
// Cmd, Fn order. The empty mask renders as "".
func (m Modifiers) String() string {
	var parts []string
	for _, d := range displayOrder {
		if m.Has(d.mod) {
			parts = append(parts, d.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseModifiers parses a "+"-separated list of modifier names. Parsing is
// case-insensitive and accepts common aliases (command/meta/super/win for
// Cmd, alt for Opt, control for Ctrl, function for Fn). An empty string
// parses to the empty mask.
func ParseModifiers(s string) (Modifiers, error) {
	var mods Modifiers
	if strings.TrimSpace(s) == "" {
		return mods, nil
	}
	for _, token := range strings.Split(s, "+") {
		mod, ok := parseModifierToken(token)
		if !ok {
			return 0, fmt.Errorf("%w: unknown modifier %q", ErrInvalidHotkey, strings.TrimSpace(token))
		}
		mods |= mod
	}
	return mods, nil
}

func parseModifierToken(token string) (Modifiers, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "cmd", "command", "meta", "super", "win", "windows":
		return ModCmd, true
	case "shift":
		return ModShift, true
	case "ctrl", "control":
		return ModCtrl, true
	case "opt", "option", "alt":
		return ModOpt, true
	case "fn", "function":
		return ModFn, true
	}
	return 0, false
}

// platformModifierName maps a single modifier bit to the vocabulary used
// on the given GOOS, lowercased for PlatformString.
func platformModifierName(mod Modifiers, goos string) string {
	darwin := goos == "darwin"
	switch mod {
	case ModCmd:
		if darwin {
			return "command"
		}
		return "super"
	case ModShift:
		return "shift"
	case ModCtrl:
		return "ctrl"
	case ModOpt:
		if darwin {
			return "option"
		}
		return "alt"
	case ModFn:
		if darwin {
			return "fn"
		}
		return ""
	}
	return ""
}
