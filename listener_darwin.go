//go:build darwin

package keygrab

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <ApplicationServices/ApplicationServices.h>

extern CGEventRef keygrabTapCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *userInfo);

static CFMachPortRef keygrabCreateTap(void *userInfo) {
	CGEventMask mask = CGEventMaskBit(kCGEventKeyDown) |
		CGEventMaskBit(kCGEventKeyUp) |
		CGEventMaskBit(kCGEventFlagsChanged);
	// Default tap options so returning NULL from the callback drops the
	// event system-wide.
	return CGEventTapCreate(kCGSessionEventTap, kCGHeadInsertEventTap,
		kCGEventTapOptionDefault, mask, keygrabTapCallback, userInfo);
}

static int keygrabInstallTap(CFMachPortRef tap, CFRunLoopSourceRef *outSource) {
	CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
	if (source == NULL) {
		return 0;
	}
	CFRunLoopAddSource(CFRunLoopGetCurrent(), source, kCFRunLoopCommonModes);
	CGEventTapEnable(tap, true);
	*outSource = source;
	return 1;
}

static void keygrabRunLoopSlice(void) {
	CFRunLoopRunInMode(kCFRunLoopDefaultMode, 0.1, true);
}

static void keygrabDropTap(CFMachPortRef tap) {
	CFMachPortInvalidate(tap);
	CFRelease(tap);
}

static void keygrabRemoveTap(CFMachPortRef tap, CFRunLoopSourceRef source) {
	CGEventTapEnable(tap, false);
	CFRunLoopRemoveSource(CFRunLoopGetCurrent(), source, kCFRunLoopCommonModes);
	CFMachPortInvalidate(tap);
	CFRelease(source);
	CFRelease(tap);
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"runtime/cgo"
	"sync/atomic"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/petems/keygrab/internal/permissions"
)

type darwinTapContext struct {
	state *listenerState
	log   zerolog.Logger
}

type darwinSource struct {
	running atomic.Bool
	done    chan struct{}
}

// openPlatformSource creates a session event tap on a dedicated OS thread
// and drives its run loop in 100ms slices so Close is observed.
func openPlatformSource(state *listenerState, log zerolog.Logger) (platformSource, error) {
	if !permissions.CheckAccessibility() {
		return nil, ErrAccessibilityNotGranted
	}

	src := &darwinSource{done: make(chan struct{})}
	src.running.Store(true)
	handle := cgo.NewHandle(&darwinTapContext{state: state, log: log})
	initErr := make(chan error, 1)

	go runEventTap(src, handle, initErr)

	if err := <-initErr; err != nil {
		handle.Delete()
		return nil, err
	}
	return src, nil
}

func runEventTap(src *darwinSource, handle cgo.Handle, initErr chan<- error) {
	runtime.LockOSThread()
	defer close(src.done)

	tap := C.keygrabCreateTap(unsafe.Pointer(uintptr(handle)))
	if tap == nil {
		initErr <- fmt.Errorf("%w: event tap creation failed (accessibility permission revoked?)", ErrCaptureInit)
		return
	}

	var source C.CFRunLoopSourceRef
	if C.keygrabInstallTap(tap, &source) == 0 {
		C.keygrabDropTap(tap)
		initErr <- fmt.Errorf("%w: run loop source creation failed", ErrCaptureInit)
		return
	}
	initErr <- nil

	for src.running.Load() {
		C.keygrabRunLoopSlice()
	}

	C.keygrabRemoveTap(tap, source)
	handle.Delete()
}

func (s *darwinSource) Close() error {
	s.running.Store(false)
	<-s.done
	return nil
}
