// Package window implements the window/session controller: window lifecycle,
// the ordered tab collection, action routing to the focused surface, and the
// close-confirmation workflow. Everything here runs on the UI event loop;
// one event's state transition completes before the next event is processed.
package window

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/termdeck/termdeck/internal/action"
	"github.com/termdeck/termdeck/internal/config"
	"github.com/termdeck/termdeck/internal/engine"
	"github.com/termdeck/termdeck/internal/errors"
	"github.com/termdeck/termdeck/internal/logger"
)

// ControllerOptions wires a Controller to its collaborators.
type ControllerOptions struct {
	Config     *config.Config
	Engine     engine.Engine
	Dispatcher *action.Dispatcher

	// EnhancedChrome reports whether the enhanced chrome variant is
	// available in this process. Resolved once here and stamped onto each
	// window at construction so behavior stays consistent for the
	// window's lifetime.
	EnhancedChrome bool
}

// Controller owns the process-wide window registry and creates and destroys
// windows against the terminal engine.
type Controller struct {
	cfg            *config.Config
	engine         engine.Engine
	dispatcher     *action.Dispatcher
	registry       *Registry
	enhancedChrome bool
	log            *slog.Logger
}

// NewController returns a controller with an empty window registry.
func NewController(opts ControllerOptions) *Controller {
	return &Controller{
		cfg:            opts.Config,
		engine:         opts.Engine,
		dispatcher:     opts.Dispatcher,
		registry:       NewRegistry(),
		enhancedChrome: opts.EnhancedChrome,
		log:            logger.ComponentLogger("Controller"),
	}
}

// Registry returns the process-wide registry of open windows.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// CreateWindow allocates a window with an empty tab collection, chrome flags
// initialized from configuration, and registers it. Construction failure is
// fatal to this creation attempt only; no partial window is left registered.
func (c *Controller) CreateWindow() (*Window, error) {
	if c.engine == nil {
		return nil, errors.WindowCreateFailed(errors.E(errors.Op("window.CreateWindow"),
			errors.KindEngine, "no engine configured"))
	}

	w := &Window{
		id:                uuid.NewString(),
		ctrl:              c,
		title:             c.cfg.GetWindowTitle(),
		fullscreen:        c.cfg.GetFullscreen(),
		decorated:         c.cfg.GetDecorations(),
		hasTitleBarChrome: c.cfg.GetTitlebar(),
		enhancedChrome:    c.enhancedChrome,
		tabBarPosition:    c.cfg.EffectiveTabBarPosition(c.enhancedChrome),
		tabBarWidth:       c.cfg.GetTabBarWidth(),
		notebook:          NewNotebook(),
	}
	w.log = logger.WithWindow(w.id)

	c.registry.Add(w)
	c.log.Info("window created", "window_id", w.id)
	return w, nil
}

// DestroyWindow tears down w and everything it owns: the pending close
// prompt is invalidated first, then every surface in every tab is closed,
// then w leaves the registry. Safe to call on an already destroyed window.
func (c *Controller) DestroyWindow(w *Window) {
	if w == nil || w.destroyed {
		return
	}

	// Invalidate before teardown so a late prompt response cannot
	// operate on the freed window.
	w.close.state = CloseClosing
	w.destroyed = true

	for _, t := range w.notebook.Tabs() {
		t.closeAllSurfaces()
	}
	w.notebook = NewNotebook()

	c.registry.Remove(w)
	c.log.Info("window destroyed", "window_id", w.id)
}

// Window is one top-level window: a tab collection plus window-level UI
// state. It holds a non-owning back-reference to its controller.
type Window struct {
	id   string
	ctrl *Controller
	log  *slog.Logger

	title             string
	fullscreen        bool
	decorated         bool
	hasTitleBarChrome bool
	enhancedChrome    bool
	tabBarPosition    config.TabBarPosition
	tabBarWidth       config.TabBarWidth

	notebook  *Notebook
	close     closeWorkflow
	destroyed bool
}

// ID returns the window's stable handle.
func (w *Window) ID() string {
	return w.id
}

func (w *Window) Title() string {
	return w.title
}

func (w *Window) SetTitle(title string) {
	w.title = title
}

func (w *Window) Fullscreen() bool {
	return w.fullscreen
}

func (w *Window) Decorated() bool {
	return w.decorated
}

// HasTitleBarChrome reports whether a header region exists for this window.
// The region can be hidden (see TitleBarVisible) while the flag persists, so
// a keybinding can bring it back.
func (w *Window) HasTitleBarChrome() bool {
	return w.hasTitleBarChrome
}

// TitleBarVisible reports whether the header region is currently shown. Its
// visibility is tied to the decorated flag: decorations off hides the title
// bar too.
func (w *Window) TitleBarVisible() bool {
	return w.hasTitleBarChrome && w.decorated
}

// EnhancedChrome reports the chrome capability resolved at construction.
func (w *Window) EnhancedChrome() bool {
	return w.enhancedChrome
}

// TabBarPosition returns the effective tab bar placement for this window.
func (w *Window) TabBarPosition() config.TabBarPosition {
	return w.tabBarPosition
}

// TabBarWidth returns the tab sizing policy for this window.
func (w *Window) TabBarWidth() config.TabBarWidth {
	return w.tabBarWidth
}

// Notebook returns the window's tab collection. Never nil, even with zero
// tabs.
func (w *Window) Notebook() *Notebook {
	return w.notebook
}

// Destroyed reports whether the window has been torn down.
func (w *Window) Destroyed() bool {
	return w.destroyed
}

// NewTab creates a tab whose surface is seeded from parent's working
// directory when parent is non-nil, appends it to the notebook, and makes it
// current.
func (w *Window) NewTab(parent engine.Surface) (*Tab, error) {
	opts := engine.SurfaceOptions{Command: w.ctrl.cfg.GetShell()}
	if parent != nil {
		opts.Dir = parent.WorkingDirectory()
	}

	surface, err := w.ctrl.engine.NewSurface(opts)
	if err != nil {
		return nil, errors.TabCreateFailed(w.id, err)
	}

	t := newTab(w, surface)
	w.notebook.Append(t)
	w.log.Debug("tab created", "tab_id", t.id, "tabs", w.notebook.Len())
	return t, nil
}

// CloseTab tears down t's surfaces and removes it from the notebook. When
// the notebook becomes empty the window closes; an empty window never stays
// open as a shell.
func (w *Window) CloseTab(t *Tab) {
	if w.notebook.IndexOf(t) == -1 {
		return
	}

	t.closeAllSurfaces()
	w.notebook.Remove(t)
	w.log.Debug("tab closed", "tab_id", t.id, "tabs", w.notebook.Len())

	if w.notebook.Len() == 0 {
		w.ctrl.DestroyWindow(w)
	}
}

// ToggleFullscreen flips the fullscreen flag. Idempotent pairwise; no side
// effects beyond the flag.
func (w *Window) ToggleFullscreen() {
	w.fullscreen = !w.fullscreen
}

// ToggleDecorations flips the decorated flag. Title bar visibility follows
// it; see TitleBarVisible.
func (w *Window) ToggleDecorations() {
	w.decorated = !w.decorated
}

// FocusedSurface resolves the surface focused within the current tab, or nil
// when the window has no tabs.
func (w *Window) FocusedSurface() engine.Surface {
	t := w.notebook.Current()
	if t == nil {
		return nil
	}
	return t.FocusedSurface()
}

// FocusCurrentTab moves input focus to the current tab's focused surface and
// returns it. A no-op returning nil when there is no current tab.
func (w *Window) FocusCurrentTab() engine.Surface {
	t := w.notebook.Current()
	if t == nil {
		return nil
	}
	return t.FocusedSurface()
}

// DispatchAction forwards the action to the dispatcher against the focused
// surface. With no focused surface the action is silently dropped; menu and
// keybinding events can race window teardown.
func (w *Window) DispatchAction(a action.Action) bool {
	return w.ctrl.dispatcher.Dispatch(w.FocusedSurface(), a)
}

// HandleAction routes an action at window scope. Actions that create or
// arrange containment (new tab, new window, splits) are executed here, since
// the window owns the tab collection and each tab owns its surface tree; the
// rest go to the dispatcher against the focused surface.
func (w *Window) HandleAction(a action.Action) bool {
	switch a {
	case action.NewTab:
		_, err := w.NewTab(w.FocusedSurface())
		return err == nil

	case action.NewWindow:
		nw, err := w.ctrl.CreateWindow()
		if err != nil {
			w.log.Error("new window failed", "error", err)
			return false
		}
		if _, err := nw.NewTab(nil); err != nil {
			w.log.Error("initial tab failed", "error", err)
			w.ctrl.DestroyWindow(nw)
			return false
		}
		return true

	case action.SplitRight:
		return w.splitCurrent(engine.SplitHorizontal)

	case action.SplitDown:
		return w.splitCurrent(engine.SplitVertical)

	default:
		return w.DispatchAction(a)
	}
}

func (w *Window) splitCurrent(o engine.SplitOrientation) bool {
	t := w.notebook.Current()
	if t == nil {
		return false
	}

	opts := engine.SurfaceOptions{Command: w.ctrl.cfg.GetShell()}
	if focused := t.FocusedSurface(); focused != nil {
		opts.Dir = focused.WorkingDirectory()
	}

	surface, err := w.ctrl.engine.NewSurface(opts)
	if err != nil {
		w.log.Error("split failed", "orientation", o.String(), "error", err)
		return false
	}

	t.Split(o, surface)
	return true
}

// SurfaceExited handles the engine's notice that a surface's process ended.
// The surface leaves its tab's tree; a tab emptied by this closes, and a
// window emptied by that closes too. Returns the owning tab's title and
// whether it was the current tab, for the caller's notification policy.
func (w *Window) SurfaceExited(surfaceID string) (tabTitle string, wasCurrent, found bool) {
	for _, t := range w.notebook.Tabs() {
		for _, s := range t.Surfaces() {
			if s.ID() != surfaceID {
				continue
			}

			tabTitle = t.Title()
			wasCurrent = t == w.notebook.Current()

			s.Close()
			t.removeSurface(surfaceID)
			if t.Empty() {
				w.CloseTab(t)
			}
			return tabTitle, wasCurrent, true
		}
	}
	return "", false, false
}
