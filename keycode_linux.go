//go:build linux

package keygrab

import "github.com/holoplot/go-evdev"

// evdevKeyMap translates kernel input key codes. There is no evdev
// equivalent of KeypadClear.
var evdevKeyMap = map[evdev.EvCode]Key{
	evdev.KEY_A: KeyA, evdev.KEY_B: KeyB, evdev.KEY_C: KeyC,
	evdev.KEY_D: KeyD, evdev.KEY_E: KeyE, evdev.KEY_F: KeyF,
	evdev.KEY_G: KeyG, evdev.KEY_H: KeyH, evdev.KEY_I: KeyI,
	evdev.KEY_J: KeyJ, evdev.KEY_K: KeyK, evdev.KEY_L: KeyL,
	evdev.KEY_M: KeyM, evdev.KEY_N: KeyN, evdev.KEY_O: KeyO,
	evdev.KEY_P: KeyP, evdev.KEY_Q: KeyQ, evdev.KEY_R: KeyR,
	evdev.KEY_S: KeyS, evdev.KEY_T: KeyT, evdev.KEY_U: KeyU,
	evdev.KEY_V: KeyV, evdev.KEY_W: KeyW, evdev.KEY_X: KeyX,
	evdev.KEY_Y: KeyY, evdev.KEY_Z: KeyZ,

	evdev.KEY_0: Key0, evdev.KEY_1: Key1, evdev.KEY_2: Key2,
	evdev.KEY_3: Key3, evdev.KEY_4: Key4, evdev.KEY_5: Key5,
	evdev.KEY_6: Key6, evdev.KEY_7: Key7, evdev.KEY_8: Key8,
	evdev.KEY_9: Key9,

	evdev.KEY_F1: KeyF1, evdev.KEY_F2: KeyF2, evdev.KEY_F3: KeyF3,
	evdev.KEY_F4: KeyF4, evdev.KEY_F5: KeyF5, evdev.KEY_F6: KeyF6,
	evdev.KEY_F7: KeyF7, evdev.KEY_F8: KeyF8, evdev.KEY_F9: KeyF9,
	evdev.KEY_F10: KeyF10, evdev.KEY_F11: KeyF11, evdev.KEY_F12: KeyF12,
	evdev.KEY_F13: KeyF13, evdev.KEY_F14: KeyF14, evdev.KEY_F15: KeyF15,
	evdev.KEY_F16: KeyF16, evdev.KEY_F17: KeyF17, evdev.KEY_F18: KeyF18,
	evdev.KEY_F19: KeyF19, evdev.KEY_F20: KeyF20,

	evdev.KEY_SPACE:     KeySpace,
	evdev.KEY_ENTER:     KeyReturn,
	evdev.KEY_TAB:       KeyTab,
	evdev.KEY_ESC:       KeyEscape,
	evdev.KEY_BACKSPACE: KeyDelete,
	evdev.KEY_DELETE:    KeyForwardDelete,
	evdev.KEY_HOME:      KeyHome,
	evdev.KEY_END:       KeyEnd,
	evdev.KEY_PAGEUP:    KeyPageUp,
	evdev.KEY_PAGEDOWN:  KeyPageDown,

	evdev.KEY_LEFT:  KeyLeftArrow,
	evdev.KEY_RIGHT: KeyRightArrow,
	evdev.KEY_UP:    KeyUpArrow,
	evdev.KEY_DOWN:  KeyDownArrow,

	evdev.KEY_MINUS:      KeyMinus,
	evdev.KEY_EQUAL:      KeyEqual,
	evdev.KEY_LEFTBRACE:  KeyLeftBracket,
	evdev.KEY_RIGHTBRACE: KeyRightBracket,
	evdev.KEY_BACKSLASH:  KeyBackslash,
	evdev.KEY_SEMICOLON:  KeySemicolon,
	evdev.KEY_APOSTROPHE: KeyQuote,
	evdev.KEY_COMMA:      KeyComma,
	evdev.KEY_DOT:        KeyPeriod,
	evdev.KEY_SLASH:      KeySlash,
	evdev.KEY_GRAVE:      KeyGrave,

	evdev.KEY_KP0: KeyKeypad0, evdev.KEY_KP1: KeyKeypad1,
	evdev.KEY_KP2: KeyKeypad2, evdev.KEY_KP3: KeyKeypad3,
	evdev.KEY_KP4: KeyKeypad4, evdev.KEY_KP5: KeyKeypad5,
	evdev.KEY_KP6: KeyKeypad6, evdev.KEY_KP7: KeyKeypad7,
	evdev.KEY_KP8: KeyKeypad8, evdev.KEY_KP9: KeyKeypad9,
	evdev.KEY_KPDOT:      KeyKeypadDecimal,
	evdev.KEY_KPASTERISK: KeyKeypadMultiply,
	evdev.KEY_KPPLUS:     KeyKeypadPlus,
	evdev.KEY_KPSLASH:    KeyKeypadDivide,
	evdev.KEY_KPENTER:    KeyKeypadEnter,
	evdev.KEY_KPMINUS:    KeyKeypadMinus,
	evdev.KEY_KPEQUAL:    KeyKeypadEquals,

	evdev.KEY_CAPSLOCK:   KeyCapsLock,
	evdev.KEY_SCROLLLOCK: KeyScrollLock,
	evdev.KEY_NUMLOCK:    KeyNumLock,

	evdev.BTN_LEFT:   KeyMouseLeft,
	evdev.BTN_RIGHT:  KeyMouseRight,
	evdev.BTN_MIDDLE: KeyMouseMiddle,
	evdev.BTN_SIDE:   KeyMouseX1,
	evdev.BTN_EXTRA:  KeyMouseX2,
}

func evdevCodeToKey(code evdev.EvCode) Key {
	return evdevKeyMap[code]
}

// evdevCodeToModifier folds left/right modifier codes into one bit.
func evdevCodeToModifier(code evdev.EvCode) Modifiers {
	switch code {
	case evdev.KEY_LEFTSHIFT, evdev.KEY_RIGHTSHIFT:
		return ModShift
	case evdev.KEY_LEFTCTRL, evdev.KEY_RIGHTCTRL:
		return ModCtrl
	case evdev.KEY_LEFTALT, evdev.KEY_RIGHTALT:
		return ModOpt
	case evdev.KEY_LEFTMETA, evdev.KEY_RIGHTMETA:
		return ModCmd
	}
	return 0
}
