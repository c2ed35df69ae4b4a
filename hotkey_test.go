package keygrab

import (
	"errors"
	"testing"
)

func TestParseHotkeyModifierPlusKey(t *testing.T) {
	h, err := ParseHotkey("Cmd+K")
	if err != nil {
		t.Fatal(err)
	}
	if h.Mods != ModCmd || h.Key != KeyK {
		t.Errorf("got %+v", h)
	}
}

func TestParseHotkeyMultipleModifiers(t *testing.T) {
	h, err := ParseHotkey("Cmd+Shift+K")
	if err != nil {
		t.Fatal(err)
	}
	if h.Mods != ModCmd|ModShift || h.Key != KeyK {
		t.Errorf("got %+v", h)
	}

	h, err = ParseHotkey("Ctrl+Alt+Delete")
	if err != nil {
		t.Fatal(err)
	}
	if h.Mods != ModCtrl|ModOpt || h.Key != KeyDelete {
		t.Errorf("got %+v", h)
	}
}

func TestParseHotkeyKeyOnly(t *testing.T) {
	h, err := ParseHotkey("F1")
	if err != nil {
		t.Fatal(err)
	}
	if !h.Mods.IsEmpty() || h.Key != KeyF1 {
		t.Errorf("got %+v", h)
	}

	h, err = ParseHotkey("Space")
	if err != nil {
		t.Fatal(err)
	}
	if !h.Mods.IsEmpty() || h.Key != KeySpace {
		t.Errorf("got %+v", h)
	}
}

func TestParseHotkeyModifiersOnly(t *testing.T) {
	h, err := ParseHotkey("Cmd+Shift")
	if err != nil {
		t.Fatal(err)
	}
	if h.Mods != ModCmd|ModShift || h.Key != KeyNone {
		t.Errorf("got %+v", h)
	}
}

func TestParseHotkeyEmptyFails(t *testing.T) {
	if _, err := ParseHotkey(""); !errors.Is(err, ErrEmptyHotkey) {
		t.Errorf("expected ErrEmptyHotkey, got %v", err)
	}
}

func TestParseHotkeyMultipleKeysFails(t *testing.T) {
	for _, in := range []string{"A+B", "Cmd+A+B"} {
		if _, err := ParseHotkey(in); !errors.Is(err, ErrInvalidHotkey) {
			t.Errorf("ParseHotkey(%q): expected ErrInvalidHotkey, got %v", in, err)
		}
	}
}

func TestParseHotkeyUnknownKeyFails(t *testing.T) {
	_, err := ParseHotkey("Cmd+NoSuchKey")
	var unknown *UnknownKeyError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownKeyError, got %v", err)
	}
	if unknown.Token != "NoSuchKey" {
		t.Errorf("wrong token: %q", unknown.Token)
	}
	if !errors.Is(err, ErrInvalidHotkey) {
		t.Error("UnknownKeyError should match ErrInvalidHotkey")
	}
}

func TestParseHotkeyCaseInsensitive(t *testing.T) {
	h1, err1 := ParseHotkey("CMD+SHIFT+K")
	h2, err2 := ParseHotkey("cmd+shift+k")
	h3, err3 := ParseHotkey("Cmd+Shift+K")
	if err1 != nil || err2 != nil || err3 != nil {
		t.Fatalf("parse failed: %v %v %v", err1, err2, err3)
	}
	if h1 != h2 || h2 != h3 {
		t.Errorf("case variants differ: %+v %+v %+v", h1, h2, h3)
	}
}

func TestHotkeyDisplay(t *testing.T) {
	h := Hotkey{Mods: ModCmd | ModShift, Key: KeyK}
	if got := h.String(); got != "Shift+Cmd+K" {
		t.Errorf("got %q", got)
	}

	h = Hotkey{Mods: ModCmd | ModShift}
	if got := h.String(); got != "Shift+Cmd" {
		t.Errorf("got %q", got)
	}

	h = Hotkey{Key: KeyF1}
	if got := h.String(); got != "F1" {
		t.Errorf("got %q", got)
	}

	if got := (Hotkey{}).String(); got != "(none)" {
		t.Errorf("got %q", got)
	}
}

func TestHotkeyDisplayRoundtrip(t *testing.T) {
	hotkeys := []Hotkey{
		{Mods: ModCmd | ModShift, Key: KeyK},
		{Mods: ModCtrl, Key: KeySpace},
		{Mods: ModCtrl | ModOpt | ModFn},
		{Key: KeyF20},
		{Mods: ModShift, Key: KeyKeypadPlus},
	}
	for _, h := range hotkeys {
		parsed, err := ParseHotkey(h.String())
		if err != nil {
			t.Fatalf("ParseHotkey(%q) failed: %v", h.String(), err)
		}
		if parsed != h {
			t.Errorf("Roundtrip failed for %q: got %+v", h.String(), parsed)
		}
	}
}

func TestNewHotkeyValidates(t *testing.T) {
	if _, err := NewHotkey(ModCmd, KeyK); err != nil {
		t.Error(err)
	}
	if _, err := NewHotkey(ModCmd|ModShift, KeyNone); err != nil {
		t.Error(err)
	}
	if _, err := NewHotkey(0, KeyF1); err != nil {
		t.Error(err)
	}
	if _, err := NewHotkey(0, KeyNone); !errors.Is(err, ErrEmptyHotkey) {
		t.Errorf("expected ErrEmptyHotkey, got %v", err)
	}
}

func TestPlatformString(t *testing.T) {
	h := Hotkey{Mods: ModCtrl | ModOpt | ModCmd | ModFn, Key: KeyK}

	if got := h.platformString("darwin"); got != "ctrl+option+command+fn+k" {
		t.Errorf("darwin: got %q", got)
	}
	// Fn has no vocabulary outside macOS and is omitted.
	if got := h.platformString("linux"); got != "ctrl+alt+super+k" {
		t.Errorf("linux: got %q", got)
	}
}

func TestKeyEventAsHotkey(t *testing.T) {
	ev := KeyEvent{Mods: ModCmd, Key: KeyK, Down: true}
	h, err := ev.AsHotkey()
	if err != nil {
		t.Fatal(err)
	}
	if h.Mods != ModCmd || h.Key != KeyK {
		t.Errorf("got %+v", h)
	}

	ev = KeyEvent{Down: false}
	if _, err := ev.AsHotkey(); !errors.Is(err, ErrEmptyHotkey) {
		t.Errorf("expected ErrEmptyHotkey, got %v", err)
	}
}

func TestHotkeyStateString(t *testing.T) {
	if Pressed.String() != "pressed" || Released.String() != "released" {
		t.Error("HotkeyState strings wrong")
	}
}
