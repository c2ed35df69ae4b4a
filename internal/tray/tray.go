package tray

import (
	"context"
	"fmt"
	"sync"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/petems/keygrab/internal/app"
	"github.com/petems/keygrab/internal/config"
)

// UI is the tray menu: one checkable item per binding that mirrors its
// pressed state, plus about/quit.
type UI struct {
	app     *app.App
	cfg     *config.Config
	version string
	commit  string
	log     zerolog.Logger

	mu    sync.Mutex
	items map[string]*systray.MenuItem
}

func New(application *app.App, cfg *config.Config, version, commit string, log zerolog.Logger) *UI {
	return &UI{
		app:     application,
		cfg:     cfg,
		version: version,
		commit:  commit,
		log:     log,
		items:   make(map[string]*systray.MenuItem),
	}
}

// SetApp sets the app reference (for circular dependency resolution)
func (u *UI) SetApp(application *app.App) {
	u.app = application
}

// SetPressed checks the binding's menu item.
func (u *UI) SetPressed(name string) {
	u.setChecked(name, true)
}

// SetReleased unchecks the binding's menu item.
func (u *UI) SetReleased(name string) {
	u.setChecked(name, false)
}

func (u *UI) setChecked(name string, checked bool) {
	u.mu.Lock()
	item := u.items[name]
	u.mu.Unlock()
	if item == nil {
		return
	}
	if checked {
		item.Check()
	} else {
		item.Uncheck()
	}
}

func (u *UI) Run(ctx context.Context) error {
	systray.Run(u.onReady, u.onExit)
	return nil
}

func (u *UI) onReady() {
	systray.SetTitle("⌨")
	systray.SetTooltip("Global hotkeys")

	for _, b := range u.cfg.Bindings {
		label := fmt.Sprintf("%s (%s)", b.Name, b.PlatformHotkey())
		item := systray.AddMenuItemCheckbox(label, "Checked while held", false)
		item.Disable() // display only, toggled by hotkey state
		u.mu.Lock()
		u.items[b.Name] = item
		u.mu.Unlock()
	}

	systray.AddSeparator()
	mAbout := systray.AddMenuItem("About", "About keygrab")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	go u.handleEvents(mAbout, mQuit)
}

func (u *UI) handleEvents(mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func (u *UI) showAbout() {
	fmt.Printf("keygrab %s (%s)\nSystem-wide hotkey capture\n", u.version, u.commit)
}

func (u *UI) onExit() {
	// Cleanup
}
