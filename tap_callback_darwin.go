//go:build darwin

package keygrab

/*
#include <ApplicationServices/ApplicationServices.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// keygrabTapCallback runs on the tap thread for every keyboard event.
// Returning nil swallows the event system-wide.
//
//export keygrabTapCallback
func keygrabTapCallback(proxy C.CGEventTapProxy, typ C.CGEventType, event C.CGEventRef, userInfo unsafe.Pointer) C.CGEventRef {
	ctx, ok := cgo.Handle(uintptr(userInfo)).Value().(*darwinTapContext)
	if !ok {
		return event
	}
	s := ctx.state

	keycode := uint16(C.CGEventGetIntegerValueField(event, C.kCGKeyboardEventKeycode))
	flags := uint64(C.CGEventGetFlags(event))
	mods := cgFlagsToModifiers(flags)

	block := false
	switch typ {
	case C.kCGEventKeyDown, C.kCGEventKeyUp:
		key := darwinKeycodeToKey(keycode)
		if key == KeyNone {
			break
		}
		// Key events carry their own flags; keep the tracked snapshot in
		// step before deciding.
		s.syncSnapshot(mods)
		block = s.keyTransition(key, typ == C.kCGEventKeyDown)

	case C.kCGEventFlagsChanged:
		// Lock keys surface on this channel; direction comes from the
		// toggled flag rather than the transition.
		if key := darwinKeycodeToKey(keycode); key != KeyNone {
			block = s.lockTransition(key, mods, flags&cgFlagAlphaShift != 0)
		} else if changed := darwinKeycodeToModifier(keycode); changed != 0 {
			block = s.flagsTransition(mods, changed)
		}

	case C.kCGEventTapDisabledByTimeout, C.kCGEventTapDisabledByUserInput:
		ctx.log.Warn().Msg("event tap disabled by system")
		return event
	}

	if block {
		return nil
	}
	return event
}
