package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atotto/clipboard"

	"github.com/petems/keygrab"
	"github.com/petems/keygrab/internal/logging"
	"github.com/petems/keygrab/internal/permissions"
)

// keygrab-record streams normalized key events for a "record a hotkey"
// flow. The last complete combination pressed before exiting is copied to
// the clipboard.
func main() {
	log := logging.NewWithLevel(os.Getenv("KEYGRAB_LOG"))

	if !permissions.CheckAccessibility() {
		permissions.PromptAccessibility()
		log.Fatal().Msg("Accessibility permission not granted")
	}

	listener, err := keygrab.NewListener(keygrab.Config{Logger: &log})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start input capture")
	}
	defer listener.Close()

	fmt.Println("Recording keyboard events...")
	fmt.Println("Press keys to see events. Press Escape (or Ctrl-C) to exit.")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		listener.Close()
	}()

	var recorded string
	for {
		event, err := listener.RecvTimeout(100 * time.Millisecond)
		if errors.Is(err, keygrab.ErrTimeout) {
			continue
		}
		if err != nil {
			break
		}

		state := "UP"
		if event.Down {
			state = "DOWN"
		}

		combo := "(no key)"
		if hotkey, err := event.AsHotkey(); err == nil {
			combo = hotkey.String()
		}
		fmt.Printf("[%s] %s\n", state, combo)

		// A full combination is a key-down with its hotkey form intact.
		if event.Down && event.Key != keygrab.KeyNone {
			recorded = combo
		}

		if event.Key == keygrab.KeyEscape && event.Down {
			fmt.Println("\nEscape pressed, exiting...")
			break
		}
	}

	if recorded == "" {
		return
	}
	if err := clipboard.WriteAll(recorded); err != nil {
		log.Error().Err(err).Msg("Clipboard write failed")
		return
	}
	fmt.Printf("Copied %q to clipboard\n", recorded)
}
