//go:build linux

package keygrab

import (
	"fmt"
	"sync/atomic"

	"github.com/holoplot/go-evdev"
	"github.com/rs/zerolog"
)

// linuxSource grabs every key-capable evdev device and, when blocking is
// enabled, re-emits unblocked events through a uinput clone. Other
// applications then only see what the clone forwards.
type linuxSource struct {
	devices []*grabbedDevice
	running atomic.Bool
	log     zerolog.Logger
}

type grabbedDevice struct {
	in  *evdev.InputDevice
	out *evdev.InputDevice // uinput clone, nil when observing only
}

func openPlatformSource(state *listenerState, log zerolog.Logger) (platformSource, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("%w: listing input devices: %v", ErrCaptureInit, err)
	}

	src := &linuxSource{log: log}
	src.running.Store(true)
	grab := state.blocking != nil

	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			// Usually a permission problem; needs membership in the
			// input group or root.
			log.Debug().Str("path", p.Path).Err(err).Msg("skipping input device")
			continue
		}
		if !supportsKeys(dev) {
			dev.Close()
			continue
		}

		gd := &grabbedDevice{in: dev}
		if grab {
			name, _ := dev.Name()
			clone, err := evdev.CloneDevice(name+" (keygrab)", dev)
			if err != nil {
				log.Warn().Str("path", p.Path).Err(err).Msg("uinput clone failed, observing only")
			} else if err := dev.Grab(); err != nil {
				log.Warn().Str("path", p.Path).Err(err).Msg("device grab failed, observing only")
				clone.Close()
			} else {
				gd.out = clone
			}
		}

		src.devices = append(src.devices, gd)
		go src.readDevice(state, gd)
		log.Debug().Str("path", p.Path).Bool("grabbed", gd.out != nil).Msg("capturing input device")
	}

	if len(src.devices) == 0 {
		return nil, fmt.Errorf("%w: no readable input devices (missing input group membership?)", ErrCaptureInit)
	}
	return src, nil
}

func supportsKeys(dev *evdev.InputDevice) bool {
	for _, t := range dev.CapableTypes() {
		if t == evdev.EV_KEY {
			return true
		}
	}
	return false
}

// readDevice pumps one device. Every event type is forwarded to the clone
// so relative motion and sync events stay intact; only blocked key
// transitions are withheld.
func (src *linuxSource) readDevice(state *listenerState, gd *grabbedDevice) {
	for src.running.Load() {
		ev, err := gd.in.ReadOne()
		if err != nil {
			return
		}
		block := handleEvdevEvent(state, ev)
		if gd.out != nil && !block {
			gd.out.WriteOne(ev)
		}
	}
}

func handleEvdevEvent(state *listenerState, ev *evdev.InputEvent) bool {
	if ev.Type != evdev.EV_KEY {
		return false
	}
	down := ev.Value != 0 // 1 press, 2 autorepeat

	if mod := evdevCodeToModifier(ev.Code); mod != 0 {
		return state.modifierTransition(mod, down)
	}

	key := evdevCodeToKey(ev.Code)
	if key == KeyNone {
		return false
	}
	// Plain left/right clicks are not interesting as hotkeys and stay
	// out of the stream unless a modifier is held.
	if (key == KeyMouseLeft || key == KeyMouseRight) && state.snapshot().IsEmpty() {
		return false
	}
	return state.keyTransition(key, down)
}

func (src *linuxSource) Close() error {
	src.running.Store(false)
	// Closing the fds unblocks pending reads.
	for _, gd := range src.devices {
		if gd.out != nil {
			gd.in.Ungrab()
			gd.out.Close()
		}
		gd.in.Close()
	}
	return nil
}
