package keygrab

import (
	"errors"
	"fmt"
)

var (
	// ErrAccessibilityNotGranted is returned on macOS when the process
	// lacks the Accessibility permission required for event taps.
	ErrAccessibilityNotGranted = errors.New("accessibility permission not granted")

	// ErrCaptureInit wraps failures to start native input capture.
	ErrCaptureInit = errors.New("failed to start input capture")

	// ErrEventLoopNotRunning is returned by receive calls after the
	// listener or manager has been closed.
	ErrEventLoopNotRunning = errors.New("event loop not running")

	// ErrTimeout is returned by RecvTimeout when no event arrived in time.
	ErrTimeout = errors.New("timed out waiting for event")

	// ErrEmptyHotkey rejects hotkeys with no modifiers and no key.
	ErrEmptyHotkey = errors.New("hotkey must have at least one modifier or a key")

	// ErrInvalidHotkey wraps malformed hotkey text.
	ErrInvalidHotkey = errors.New("invalid hotkey format")

	// ErrHotkeyNotFound is returned when unregistering an unknown id.
	ErrHotkeyNotFound = errors.New("hotkey not found")

	// ErrAlreadyRegistered is returned when registering a duplicate hotkey.
	ErrAlreadyRegistered = errors.New("hotkey already registered")

	// ErrUnsupportedPlatform is returned on platforms without a capture
	// backend.
	ErrUnsupportedPlatform = errors.New("platform not supported")
)

// UnknownKeyError reports a token that is not a recognized key name.
type UnknownKeyError struct {
	Token string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key: %q", e.Token)
}

func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrInvalidHotkey
}
