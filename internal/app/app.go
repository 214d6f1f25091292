// Package app is the Bubble Tea model tying the window controller to the
// terminal: key routing, modal lifecycle, and chrome rendering. One process
// hosts many windows; the model presents the active one and switches between
// them as windows open and close.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/termdeck/termdeck/internal/action"
	"github.com/termdeck/termdeck/internal/clipboard"
	"github.com/termdeck/termdeck/internal/config"
	"github.com/termdeck/termdeck/internal/engine"
	"github.com/termdeck/termdeck/internal/logger"
	"github.com/termdeck/termdeck/internal/ui"
	"github.com/termdeck/termdeck/internal/window"
)

// SurfaceExitedMsg is sent when a surface's process ends on its own.
type SurfaceExitedMsg struct {
	SurfaceID string
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	engine engine.Engine
	ctrl   *window.Controller
	win    *window.Window // the window currently presented

	header *ui.Header
	footer *ui.Footer
	tabBar *ui.TabBar
	modal  *ui.Modal

	width  int
	height int

	exitCh       chan string
	flashTicking bool
}

// New creates a new app model backed by the local PTY engine.
func New(cfg *config.Config, version string) *Model {
	m := newModel(cfg, version, nil)
	m.engine = engine.NewLocalEngine(engine.LocalEngineOptions{
		Shell:        cfg.GetShell(),
		ConfirmClose: cfg.GetConfirmClose,
		CopyText:     clipboard.WriteText,
		PasteText:    clipboard.ReadText,
		OnExit: func(s engine.Surface) {
			m.exitCh <- s.ID()
		},
	})
	m.ctrl = window.NewController(window.ControllerOptions{
		Config:     cfg,
		Engine:     m.engine,
		Dispatcher: action.NewDispatcher(m.notify),
		// Side tab bars need chrome the plain TUI build doesn't carry.
		EnhancedChrome: false,
	})
	return m
}

// newModel builds the model around an engine the caller supplies later.
// Tests inject a fake engine and controller through this path.
func newModel(cfg *config.Config, version string, eng engine.Engine) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}
	ui.RefreshModalStyles()

	m := &Model{
		config:  cfg,
		version: version,
		engine:  eng,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		modal:   ui.NewModal(),
		exitCh:  make(chan string, 16),
	}
	m.footer.SetBindings([]ui.KeyBinding{
		{Key: "ctrl+t", Desc: "new tab"},
		{Key: "ctrl+n", Desc: "new window"},
		{Key: "ctrl+pgup/dn", Desc: "switch tab"},
		{Key: "ctrl+k", Desc: "find tab"},
		{Key: "ctrl+r", Desc: "rename"},
		{Key: "ctrl+o", Desc: "settings"},
		{Key: "ctrl+w", Desc: "close"},
		{Key: "ctrl+q", Desc: "quit"},
	})
	if eng != nil {
		m.ctrl = window.NewController(window.ControllerOptions{
			Config:     cfg,
			Engine:     eng,
			Dispatcher: action.NewDispatcher(m.notify),
		})
	}
	return m
}

// Init opens the first window with one tab and starts the exit listener.
func (m *Model) Init() tea.Cmd {
	if err := clipboard.Init(); err != nil {
		logger.Warn("App: clipboard unavailable: %v", err)
	}

	w, err := m.ctrl.CreateWindow()
	if err != nil {
		logger.Error("App: initial window failed: %v", err)
		return tea.Quit
	}
	if _, err := w.NewTab(nil); err != nil {
		logger.Error("App: initial tab failed: %v", err)
		m.ctrl.DestroyWindow(w)
		return tea.Quit
	}
	m.attachWindow(w)

	return m.listenForSurfaceExit()
}

// listenForSurfaceExit turns engine exit callbacks into messages. Re-armed
// after every delivery.
func (m *Model) listenForSurfaceExit() tea.Cmd {
	return func() tea.Msg {
		id, ok := <-m.exitCh
		if !ok {
			return nil
		}
		return SurfaceExitedMsg{SurfaceID: id}
	}
}

// notify is the dispatcher's acknowledgement sink.
func (m *Model) notify(msg string) {
	m.footer.SetFlash(msg, ui.FlashSuccess)
}

// Close tears down every window, terminating all terminal sessions. Called
// on the way out of the program.
func (m *Model) Close() {
	for _, w := range m.ctrl.Registry().Windows() {
		m.ctrl.DestroyWindow(w)
	}
}

// attachWindow makes w the presented window and rebuilds the chrome that
// depends on per-window flags.
func (m *Model) attachWindow(w *window.Window) {
	m.win = w
	m.tabBar = ui.NewTabBar(w.TabBarPosition(), w.TabBarWidth())
	m.updateSizes()
}
