//go:build !darwin && !windows && !linux

package keygrab

import "github.com/rs/zerolog"

func openPlatformSource(state *listenerState, log zerolog.Logger) (platformSource, error) {
	return nil, ErrUnsupportedPlatform
}
