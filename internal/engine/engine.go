// Package engine defines the boundary between the window controller and the
// terminal engine. The controller never owns surface memory; it holds
// non-owning references and forwards user intents as binding actions.
package engine

import "errors"

// BindingAction is an abstract user intent forwarded to a surface for
// execution. The set is closed; the dispatcher maps each recognized action
// identifier to the binding action of the same intent.
type BindingAction string

const (
	BindingNewTab             BindingAction = "new_tab"
	BindingNewWindow          BindingAction = "new_window"
	BindingCloseSurface       BindingAction = "close_surface"
	BindingSplitRight         BindingAction = "split_right"
	BindingSplitDown          BindingAction = "split_down"
	BindingToggleInspector    BindingAction = "toggle_inspector"
	BindingCopyToClipboard    BindingAction = "copy_to_clipboard"
	BindingPasteFromClipboard BindingAction = "paste_from_clipboard"
	BindingReset              BindingAction = "reset"
)

// ErrActionUnsupported is returned by a surface when it cannot execute a
// binding action. The dispatcher logs and swallows it; it never escalates.
var ErrActionUnsupported = errors.New("binding action not supported by surface")

// Surface is one terminal session's interaction unit, owned by the engine.
// The controller accesses surfaces by non-owning reference only.
type Surface interface {
	// ID returns the stable surface handle.
	ID() string

	// Title returns the surface's display title, already sanitized of
	// escape sequences.
	Title() string

	// WorkingDirectory returns the surface's working directory, used to
	// seed new tabs and splits created from this surface.
	WorkingDirectory() string

	// NeedsConfirmQuit reports whether destroying this surface should be
	// gated on user confirmation (e.g., a live foreground process).
	NeedsConfirmQuit() bool

	// PerformBindingAction executes an abstract user intent on this
	// surface. Returns ErrActionUnsupported for intents the surface
	// cannot execute.
	PerformBindingAction(action BindingAction) error

	// Resize adjusts the surface's grid dimensions.
	Resize(cols, rows int) error

	// Close terminates the surface. Idempotent.
	Close() error
}

// SurfaceOptions configures a new surface.
type SurfaceOptions struct {
	Command string   // Program to run; engine default when empty
	Dir     string   // Working directory; process default when empty
	Env     []string // Extra environment entries
	Cols    int      // Initial grid width; engine default when zero
	Rows    int      // Initial grid height; engine default when zero
}

// Engine creates surfaces. The controller holds exactly one engine for the
// process lifetime.
type Engine interface {
	NewSurface(opts SurfaceOptions) (Surface, error)
}
