// Package action defines the closed set of recognized action identifiers and
// the dispatcher that routes them to the focused surface.
package action

import (
	stderrors "errors"
	"log/slog"

	"github.com/termdeck/termdeck/internal/engine"
	"github.com/termdeck/termdeck/internal/logger"
)

// Action is a recognized action identifier. The set is closed; identifiers
// outside it are rejected at parse time, not at dispatch time.
type Action string

const (
	NewTab             Action = "new_tab"
	NewWindow          Action = "new_window"
	CloseSurface       Action = "close_surface"
	SplitRight         Action = "split_right"
	SplitDown          Action = "split_down"
	ToggleInspector    Action = "toggle_inspector"
	CopyToClipboard    Action = "copy_to_clipboard"
	PasteFromClipboard Action = "paste_from_clipboard"
	Reset              Action = "reset"
)

// bindings maps each action to the engine binding action of the same intent.
// Exactly one binding per action.
var bindings = map[Action]engine.BindingAction{
	NewTab:             engine.BindingNewTab,
	NewWindow:          engine.BindingNewWindow,
	CloseSurface:       engine.BindingCloseSurface,
	SplitRight:         engine.BindingSplitRight,
	SplitDown:          engine.BindingSplitDown,
	ToggleInspector:    engine.BindingToggleInspector,
	CopyToClipboard:    engine.BindingCopyToClipboard,
	PasteFromClipboard: engine.BindingPasteFromClipboard,
	Reset:              engine.BindingReset,
}

// Parse resolves an identifier against the recognized set.
func Parse(id string) (Action, bool) {
	a := Action(id)
	_, ok := bindings[a]
	return a, ok
}

// All returns the recognized actions. Used by the settings UI and tests.
func All() []Action {
	return []Action{
		NewTab, NewWindow, CloseSurface,
		SplitRight, SplitDown, ToggleInspector,
		CopyToClipboard, PasteFromClipboard, Reset,
	}
}

// Dispatcher routes actions to surfaces. Dispatch failures are logged and
// swallowed; they never tear down the window.
type Dispatcher struct {
	log    *slog.Logger
	notify func(msg string)
}

// NewDispatcher returns a dispatcher. notify, when non-nil, receives short
// acknowledgement messages for actions that produce no visible output of
// their own (currently clipboard copies).
func NewDispatcher(notify func(msg string)) *Dispatcher {
	return &Dispatcher{
		log:    logger.ComponentLogger("Dispatcher"),
		notify: notify,
	}
}

// Dispatch forwards the action to the surface and reports whether the surface
// performed it. A nil surface is a no-op. Unrecognized actions and surface
// failures return false.
func (d *Dispatcher) Dispatch(s engine.Surface, a Action) bool {
	if s == nil {
		d.log.Debug("dispatch with no focused surface", "action", string(a))
		return false
	}

	binding, ok := bindings[a]
	if !ok {
		d.log.Warn("unrecognized action", "action", string(a))
		return false
	}

	if err := s.PerformBindingAction(binding); err != nil {
		if stderrors.Is(err, engine.ErrActionUnsupported) {
			d.log.Debug("action not supported by surface",
				"action", string(a), "surface_id", s.ID())
		} else {
			d.log.Error("action failed",
				"action", string(a), "surface_id", s.ID(), "error", err)
		}
		return false
	}

	if a == CopyToClipboard && d.notify != nil {
		d.notify("Copied to clipboard")
	}
	return true
}
