// Package keygrab captures system-wide keyboard and mouse input and turns
// it into hotkey events.
//
// A Listener streams every normalized key transition, which is useful for
// "press a combination to record it" flows. A Manager sits on top of a
// listener: hotkeys registered with it are matched with edge-triggered
// press/release semantics and are suppressed from other applications while
// the manager is running.
//
// Capture uses a CGEventTap on macOS (requires the Accessibility
// permission), low-level keyboard and mouse hooks on Windows, and evdev
// device grabbing on Linux.
package keygrab
