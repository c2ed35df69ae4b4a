//go:build windows

package keygrab

// Virtual-key translation tables (winuser.h).

var windowsKeyMap = map[uint16]Key{
	// Letters (VK 'A'..'Z')
	0x41: KeyA, 0x42: KeyB, 0x43: KeyC, 0x44: KeyD, 0x45: KeyE,
	0x46: KeyF, 0x47: KeyG, 0x48: KeyH, 0x49: KeyI, 0x4A: KeyJ,
	0x4B: KeyK, 0x4C: KeyL, 0x4D: KeyM, 0x4E: KeyN, 0x4F: KeyO,
	0x50: KeyP, 0x51: KeyQ, 0x52: KeyR, 0x53: KeyS, 0x54: KeyT,
	0x55: KeyU, 0x56: KeyV, 0x57: KeyW, 0x58: KeyX, 0x59: KeyY,
	0x5A: KeyZ,

	// Number row (VK '0'..'9')
	0x30: Key0, 0x31: Key1, 0x32: Key2, 0x33: Key3, 0x34: Key4,
	0x35: Key5, 0x36: Key6, 0x37: Key7, 0x38: Key8, 0x39: Key9,

	// Keypad
	0x60: KeyKeypad0, 0x61: KeyKeypad1, 0x62: KeyKeypad2,
	0x63: KeyKeypad3, 0x64: KeyKeypad4, 0x65: KeyKeypad5,
	0x66: KeyKeypad6, 0x67: KeyKeypad7, 0x68: KeyKeypad8,
	0x69: KeyKeypad9,
	0x6A: KeyKeypadMultiply, // VK_MULTIPLY
	0x6B: KeyKeypadPlus,     // VK_ADD
	0x6D: KeyKeypadMinus,    // VK_SUBTRACT
	0x6E: KeyKeypadDecimal,  // VK_DECIMAL
	0x6F: KeyKeypadDivide,   // VK_DIVIDE

	// Function keys
	0x70: KeyF1, 0x71: KeyF2, 0x72: KeyF3, 0x73: KeyF4,
	0x74: KeyF5, 0x75: KeyF6, 0x76: KeyF7, 0x77: KeyF8,
	0x78: KeyF9, 0x79: KeyF10, 0x7A: KeyF11, 0x7B: KeyF12,
	0x7C: KeyF13, 0x7D: KeyF14, 0x7E: KeyF15, 0x7F: KeyF16,
	0x80: KeyF17, 0x81: KeyF18, 0x82: KeyF19, 0x83: KeyF20,

	// Special keys
	0x08: KeyDelete,        // VK_BACK
	0x09: KeyTab,           // VK_TAB
	0x0D: KeyReturn,        // VK_RETURN (keypad enter carries the extended flag)
	0x1B: KeyEscape,        // VK_ESCAPE
	0x20: KeySpace,         // VK_SPACE
	0x21: KeyPageUp,        // VK_PRIOR
	0x22: KeyPageDown,      // VK_NEXT
	0x23: KeyEnd,           // VK_END
	0x24: KeyHome,          // VK_HOME
	0x25: KeyLeftArrow,     // VK_LEFT
	0x26: KeyUpArrow,       // VK_UP
	0x27: KeyRightArrow,    // VK_RIGHT
	0x28: KeyDownArrow,     // VK_DOWN
	0x2E: KeyForwardDelete, // VK_DELETE

	// Lock keys
	0x14: KeyCapsLock,   // VK_CAPITAL
	0x90: KeyNumLock,    // VK_NUMLOCK
	0x91: KeyScrollLock, // VK_SCROLL

	// OEM keys (US layout)
	0xBA: KeySemicolon,    // VK_OEM_1
	0xBB: KeyEqual,        // VK_OEM_PLUS
	0xBC: KeyComma,        // VK_OEM_COMMA
	0xBD: KeyMinus,        // VK_OEM_MINUS
	0xBE: KeyPeriod,       // VK_OEM_PERIOD
	0xBF: KeySlash,        // VK_OEM_2
	0xC0: KeyGrave,        // VK_OEM_3
	0xDB: KeyLeftBracket,  // VK_OEM_4
	0xDC: KeyBackslash,    // VK_OEM_5
	0xDD: KeyRightBracket, // VK_OEM_6
	0xDE: KeyQuote,        // VK_OEM_7
}

// vkToKey translates a virtual-key code; extended distinguishes keypad
// enter from the main return key.
func vkToKey(vk uint16, extended bool) Key {
	if vk == 0x0D && extended {
		return KeyKeypadEnter
	}
	return windowsKeyMap[vk]
}

// vkToModifier folds the generic and left/right modifier VKs into one bit.
func vkToModifier(vk uint16) Modifiers {
	switch vk {
	case 0x10, 0xA0, 0xA1: // VK_SHIFT, VK_LSHIFT, VK_RSHIFT
		return ModShift
	case 0x11, 0xA2, 0xA3: // VK_CONTROL, VK_LCONTROL, VK_RCONTROL
		return ModCtrl
	case 0x12, 0xA4, 0xA5: // VK_MENU, VK_LMENU, VK_RMENU
		return ModOpt
	case 0x5B, 0x5C: // VK_LWIN, VK_RWIN
		return ModCmd
	}
	return 0
}
