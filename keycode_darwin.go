//go:build darwin

package keygrab

// CGEventFlags masks (stable public constants from CGEventTypes.h).
const (
	cgFlagAlphaShift  = 0x00010000
	cgFlagShift       = 0x00020000
	cgFlagControl     = 0x00040000
	cgFlagAlternate   = 0x00080000
	cgFlagCommand     = 0x00100000
	cgFlagSecondaryFn = 0x00800000
)

// cgFlagsToModifiers folds a CGEventFlags value into a modifier mask.
func cgFlagsToModifiers(flags uint64) Modifiers {
	var mods Modifiers
	if flags&cgFlagCommand != 0 {
		mods |= ModCmd
	}
	if flags&cgFlagShift != 0 {
		mods |= ModShift
	}
	if flags&cgFlagControl != 0 {
		mods |= ModCtrl
	}
	if flags&cgFlagAlternate != 0 {
		mods |= ModOpt
	}
	if flags&cgFlagSecondaryFn != 0 {
		mods |= ModFn
	}
	return mods
}

// darwinKeyMap translates macOS virtual keycodes (Carbon HIToolbox) to
// keys. Modifier keycodes are absent; they arrive via FlagsChanged.
var darwinKeyMap = map[uint16]Key{
	0x00: KeyA,
	0x01: KeyS,
	0x02: KeyD,
	0x03: KeyF,
	0x04: KeyH,
	0x05: KeyG,
	0x06: KeyZ,
	0x07: KeyX,
	0x08: KeyC,
	0x09: KeyV,
	0x0B: KeyB,
	0x0C: KeyQ,
	0x0D: KeyW,
	0x0E: KeyE,
	0x0F: KeyR,
	0x10: KeyY,
	0x11: KeyT,
	0x12: Key1,
	0x13: Key2,
	0x14: Key3,
	0x15: Key4,
	0x16: Key6,
	0x17: Key5,
	0x18: KeyEqual,
	0x19: Key9,
	0x1A: Key7,
	0x1B: KeyMinus,
	0x1C: Key8,
	0x1D: Key0,
	0x1E: KeyRightBracket,
	0x1F: KeyO,
	0x20: KeyU,
	0x21: KeyLeftBracket,
	0x22: KeyI,
	0x23: KeyP,
	0x24: KeyReturn,
	0x25: KeyL,
	0x26: KeyJ,
	0x27: KeyQuote,
	0x28: KeyK,
	0x29: KeySemicolon,
	0x2A: KeyBackslash,
	0x2B: KeyComma,
	0x2C: KeySlash,
	0x2D: KeyN,
	0x2E: KeyM,
	0x2F: KeyPeriod,
	0x30: KeyTab,
	0x31: KeySpace,
	0x32: KeyGrave,
	0x33: KeyDelete,
	0x35: KeyEscape,
	0x39: KeyCapsLock,
	0x40: KeyF17,
	0x41: KeyKeypadDecimal,
	0x43: KeyKeypadMultiply,
	0x45: KeyKeypadPlus,
	0x47: KeyKeypadClear,
	0x4B: KeyKeypadDivide,
	0x4C: KeyKeypadEnter,
	0x4E: KeyKeypadMinus,
	0x4F: KeyF18,
	0x50: KeyF19,
	0x51: KeyKeypadEquals,
	0x52: KeyKeypad0,
	0x53: KeyKeypad1,
	0x54: KeyKeypad2,
	0x55: KeyKeypad3,
	0x56: KeyKeypad4,
	0x57: KeyKeypad5,
	0x58: KeyKeypad6,
	0x59: KeyKeypad7,
	0x5A: KeyF20,
	0x5B: KeyKeypad8,
	0x5C: KeyKeypad9,
	0x60: KeyF5,
	0x61: KeyF6,
	0x62: KeyF7,
	0x63: KeyF3,
	0x64: KeyF8,
	0x65: KeyF9,
	0x67: KeyF11,
	0x69: KeyF13,
	0x6A: KeyF16,
	0x6B: KeyF14,
	0x6D: KeyF10,
	0x6F: KeyF12,
	0x71: KeyF15,
	0x73: KeyHome,
	0x74: KeyPageUp,
	0x75: KeyForwardDelete,
	0x76: KeyF4,
	0x77: KeyEnd,
	0x78: KeyF2,
	0x79: KeyPageDown,
	0x7A: KeyF1,
	0x7B: KeyLeftArrow,
	0x7C: KeyRightArrow,
	0x7D: KeyDownArrow,
	0x7E: KeyUpArrow,
}

func darwinKeycodeToKey(code uint16) Key {
	return darwinKeyMap[code]
}

// darwinKeycodeToModifier maps modifier keycodes seen on the FlagsChanged
// channel. Left and right variants fold into one bit.
func darwinKeycodeToModifier(code uint16) Modifiers {
	switch code {
	case 0x37, 0x36: // command, right command
		return ModCmd
	case 0x38, 0x3C: // shift, right shift
		return ModShift
	case 0x3B, 0x3E: // control, right control
		return ModCtrl
	case 0x3A, 0x3D: // option, right option
		return ModOpt
	case 0x3F: // fn
		return ModFn
	}
	return 0
}
