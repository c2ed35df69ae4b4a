//go:build windows

package keygrab

import (
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procPeekMessageW        = user32.NewProc("PeekMessageW")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14

	wmKeyDown    = 0x0100
	wmKeyUp      = 0x0101
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C

	llkhfExtended = 0x01
	xbutton1      = 1
	pmRemove      = 1
)

type kbdllHookStruct struct {
	VkCode    uint32
	ScanCode  uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type msllHookStruct struct {
	Pt        struct{ X, Y int32 }
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

type winMsg struct {
	Hwnd    windows.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// One process-wide pair of low-level hooks feeds every open listener.
// NewCallback trampolines are a limited resource, so they are created once
// and the hook thread is started and stopped by consumer refcount.
var winHooks struct {
	mu        sync.Mutex
	consumers []*listenerState
	quit      chan struct{}
	done      chan struct{}

	once         sync.Once
	keyboardProc uintptr
	mouseProc    uintptr
}

type windowsSource struct {
	state *listenerState
}

func openPlatformSource(state *listenerState, log zerolog.Logger) (platformSource, error) {
	winHooks.once.Do(func() {
		winHooks.keyboardProc = windows.NewCallback(keyboardHookProc)
		winHooks.mouseProc = windows.NewCallback(mouseHookProc)
	})

	winHooks.mu.Lock()
	defer winHooks.mu.Unlock()

	if len(winHooks.consumers) == 0 {
		initErr := make(chan error, 1)
		winHooks.quit = make(chan struct{})
		winHooks.done = make(chan struct{})
		go runHookThread(initErr, log)
		if err := <-initErr; err != nil {
			return nil, err
		}
	}
	winHooks.consumers = append(winHooks.consumers, state)
	return &windowsSource{state: state}, nil
}

func (s *windowsSource) Close() error {
	winHooks.mu.Lock()
	for i, c := range winHooks.consumers {
		if c == s.state {
			winHooks.consumers = append(winHooks.consumers[:i], winHooks.consumers[i+1:]...)
			break
		}
	}
	last := len(winHooks.consumers) == 0
	quit, done := winHooks.quit, winHooks.done
	winHooks.mu.Unlock()

	if last {
		close(quit)
		<-done
	}
	return nil
}

// runHookThread installs both hooks on a locked OS thread and pumps
// messages until the last consumer closes.
func runHookThread(initErr chan<- error, log zerolog.Logger) {
	runtime.LockOSThread()
	defer close(winHooks.done)

	kb, _, err := procSetWindowsHookExW.Call(whKeyboardLL, winHooks.keyboardProc, 0, 0)
	if kb == 0 {
		initErr <- fmt.Errorf("%w: keyboard hook: %v", ErrCaptureInit, err)
		return
	}
	mouse, _, err := procSetWindowsHookExW.Call(whMouseLL, winHooks.mouseProc, 0, 0)
	if mouse == 0 {
		procUnhookWindowsHookEx.Call(kb)
		initErr <- fmt.Errorf("%w: mouse hook: %v", ErrCaptureInit, err)
		return
	}
	initErr <- nil

	var msg winMsg
	for {
		select {
		case <-winHooks.quit:
			procUnhookWindowsHookEx.Call(mouse)
			procUnhookWindowsHookEx.Call(kb)
			return
		default:
		}
		// Low-level hooks are serviced while pumping this thread's queue.
		for {
			ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0, pmRemove)
			if ret == 0 {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func hookConsumers() []*listenerState {
	winHooks.mu.Lock()
	consumers := make([]*listenerState, len(winHooks.consumers))
	copy(consumers, winHooks.consumers)
	winHooks.mu.Unlock()
	return consumers
}

func keyboardHookProc(code uintptr, wparam, lparam uintptr) uintptr {
	if int(code) < 0 {
		ret, _, _ := procCallNextHookEx.Call(0, code, wparam, lparam)
		return ret
	}

	kb := (*kbdllHookStruct)(unsafe.Pointer(lparam))
	down := wparam == wmKeyDown || wparam == wmSysKeyDown
	vk := uint16(kb.VkCode)
	extended := kb.Flags&llkhfExtended != 0

	block := false
	for _, s := range hookConsumers() {
		if mod := vkToModifier(vk); mod != 0 {
			if s.modifierTransition(mod, down) {
				block = true
			}
		} else if key := vkToKey(vk, extended); key != KeyNone {
			if s.keyTransition(key, down) {
				block = true
			}
		}
	}
	if block {
		return 1
	}
	ret, _, _ := procCallNextHookEx.Call(0, code, wparam, lparam)
	return ret
}

// mouseHookProc reports button transitions but never blocks them. Left and
// right buttons are only reported while modifiers are held so plain clicks
// stay cheap; middle and side buttons always pass through the normalizer.
func mouseHookProc(code uintptr, wparam, lparam uintptr) uintptr {
	if int(code) >= 0 {
		ms := (*msllHookStruct)(unsafe.Pointer(lparam))
		var key Key
		var down bool
		switch wparam {
		case wmLButtonDown, wmLButtonUp:
			key, down = KeyMouseLeft, wparam == wmLButtonDown
		case wmRButtonDown, wmRButtonUp:
			key, down = KeyMouseRight, wparam == wmRButtonDown
		case wmMButtonDown, wmMButtonUp:
			key, down = KeyMouseMiddle, wparam == wmMButtonDown
		case wmXButtonDown, wmXButtonUp:
			if ms.MouseData>>16 == xbutton1 {
				key = KeyMouseX1
			} else {
				key = KeyMouseX2
			}
			down = wparam == wmXButtonDown
		}
		if key != KeyNone {
			for _, s := range hookConsumers() {
				if (key == KeyMouseLeft || key == KeyMouseRight) && s.snapshot().IsEmpty() {
					continue
				}
				s.keyTransition(key, down)
			}
		}
	}
	ret, _, _ := procCallNextHookEx.Call(0, code, wparam, lparam)
	return ret
}
