package keygrab

import "strings"

// Key identifies a keyboard key or mouse button usable in a hotkey.
// KeyNone is the zero value and means "no key" (modifier-only hotkeys and
// modifier transition events).
type Key int

const (
	KeyNone Key = iota

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Number row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20

	// Special keys
	KeySpace
	KeyReturn
	KeyTab
	KeyEscape
	KeyDelete
	KeyForwardDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow

	// Punctuation and symbols
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyComma
	KeyPeriod
	KeySlash
	KeyGrave

	// Keypad
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadMultiply
	KeyKeypadPlus
	KeyKeypadClear
	KeyKeypadDivide
	KeyKeypadEnter
	KeyKeypadMinus
	KeyKeypadEquals

	// Lock keys
	KeyCapsLock
	KeyScrollLock
	KeyNumLock

	// Mouse buttons. X1 is often "back", X2 "forward" on mice with side
	// buttons.
	KeyMouseLeft
	KeyMouseRight
	KeyMouseMiddle
	KeyMouseX1
	KeyMouseX2

	keyCount
)

var keyNames = map[Key]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",

	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5",
	KeyF6: "F6", KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10",
	KeyF11: "F11", KeyF12: "F12", KeyF13: "F13", KeyF14: "F14",
	KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20",

	KeySpace:         "Space",
	KeyReturn:        "Return",
	KeyTab:           "Tab",
	KeyEscape:        "Escape",
	KeyDelete:        "Delete",
	KeyForwardDelete: "ForwardDelete",
	KeyHome:          "Home",
	KeyEnd:           "End",
	KeyPageUp:        "PageUp",
	KeyPageDown:      "PageDown",

	KeyLeftArrow:  "Left",
	KeyRightArrow: "Right",
	KeyUpArrow:    "Up",
	KeyDownArrow:  "Down",

	KeyMinus:        "-",
	KeyEqual:        "=",
	KeyLeftBracket:  "[",
	KeyRightBracket: "]",
	KeyBackslash:    `\`,
	KeySemicolon:    ";",
	KeyQuote:        "'",
	KeyComma:        ",",
	KeyPeriod:       ".",
	KeySlash:        "/",
	KeyGrave:        "`",

	KeyKeypad0: "Keypad0", KeyKeypad1: "Keypad1", KeyKeypad2: "Keypad2",
	KeyKeypad3: "Keypad3", KeyKeypad4: "Keypad4", KeyKeypad5: "Keypad5",
	KeyKeypad6: "Keypad6", KeyKeypad7: "Keypad7", KeyKeypad8: "Keypad8",
	KeyKeypad9: "Keypad9",
	KeyKeypadDecimal:  "Keypad.",
	KeyKeypadMultiply: "Keypad*",
	KeyKeypadPlus:     "Keypad+",
	KeyKeypadClear:    "KeypadClear",
	KeyKeypadDivide:   "Keypad/",
	KeyKeypadEnter:    "KeypadEnter",
	KeyKeypadMinus:    "Keypad-",
	KeyKeypadEquals:   "Keypad=",

	KeyCapsLock:   "CapsLock",
	KeyScrollLock: "ScrollLock",
	KeyNumLock:    "NumLock",

	KeyMouseLeft:   "MouseLeft",
	KeyMouseRight:  "MouseRight",
	KeyMouseMiddle: "MouseMiddle",
	KeyMouseX1:     "MouseX1",
	KeyMouseX2:     "MouseX2",
}

// keyAliases holds parse-only spellings on top of the canonical names.
var keyAliases = map[string]Key{
	"num0": Key0, "num1": Key1, "num2": Key2, "num3": Key3, "num4": Key4,
	"num5": Key5, "num6": Key6, "num7": Key7, "num8": Key8, "num9": Key9,

	" ":         KeySpace,
	"enter":     KeyReturn,
	"esc":       KeyEscape,
	"backspace": KeyDelete,
	"del":       KeyForwardDelete,

	"leftarrow":  KeyLeftArrow,
	"rightarrow": KeyRightArrow,
	"uparrow":    KeyUpArrow,
	"downarrow":  KeyDownArrow,

	"minus":        KeyMinus,
	"equal":        KeyEqual,
	"equals":       KeyEqual,
	"leftbracket":  KeyLeftBracket,
	"rightbracket": KeyRightBracket,
	"backslash":    KeyBackslash,
	"semicolon":    KeySemicolon,
	"quote":        KeyQuote,
	"comma":        KeyComma,
	"period":       KeyPeriod,
	"slash":        KeySlash,
	"grave":        KeyGrave,
	"backtick":     KeyGrave,

	"keypaddecimal":  KeyKeypadDecimal,
	"keypadmultiply": KeyKeypadMultiply,
	"keypadplus":     KeyKeypadPlus,
	"keypaddivide":   KeyKeypadDivide,
	"keypadminus":    KeyKeypadMinus,
	"keypadequals":   KeyKeypadEquals,

	"caps":   KeyCapsLock,
	"scroll": KeyScrollLock,

	"leftclick": KeyMouseLeft, "lmb": KeyMouseLeft, "mouse1": KeyMouseLeft,
	"rightclick": KeyMouseRight, "rmb": KeyMouseRight, "mouse2": KeyMouseRight,
	"middleclick": KeyMouseMiddle, "mmb": KeyMouseMiddle, "mouse3": KeyMouseMiddle,
	"mouse4": KeyMouseX1, "back": KeyMouseX1, "xbutton1": KeyMouseX1,
	"mouse5": KeyMouseX2, "forward": KeyMouseX2, "xbutton2": KeyMouseX2,
}

// keyParseTable maps every lowercased canonical name and alias to its key.
var keyParseTable = func() map[string]Key {
	table := make(map[string]Key, len(keyNames)+len(keyAliases))
	for key, name := range keyNames {
		table[strings.ToLower(name)] = key
	}
	for alias, key := range keyAliases {
		table[alias] = key
	}
	return table
}()

// String returns the canonical display name of the key, or "" for KeyNone
// and out-of-range values.
func (k Key) String() string {
	return keyNames[k]
}

// ParseKey parses a key from its display name or a known alias. Parsing is
// case-insensitive and ignores surrounding whitespace.
func ParseKey(s string) (Key, error) {
	token := s
	// A bare " " means the space bar, so trim only multi-rune input.
	if len(token) > 1 {
		token = strings.TrimSpace(token)
	}
	if key, ok := keyParseTable[strings.ToLower(token)]; ok {
		return key, nil
	}
	return KeyNone, &UnknownKeyError{Token: strings.TrimSpace(s)}
}

// IsMouseButton reports whether the key is a mouse button.
func (k Key) IsMouseButton() bool {
	return k >= KeyMouseLeft && k <= KeyMouseX2
}
