package window

import (
	"github.com/google/uuid"

	"github.com/termdeck/termdeck/internal/engine"
)

// Tab is one selectable unit in a window, owning one surface tree. The
// back-reference to the owning window is non-owning; ownership flows strictly
// downward.
type Tab struct {
	id     string
	window *Window
	tree   *engine.Tree

	// userTitle, when set, overrides the focused surface's title.
	userTitle string
}

func newTab(w *Window, first engine.Surface) *Tab {
	return &Tab{
		id:     uuid.NewString(),
		window: w,
		tree:   engine.NewTree(first),
	}
}

// ID returns the tab's stable handle, unique within its window.
func (t *Tab) ID() string {
	return t.id
}

// Window returns the owning window.
func (t *Tab) Window() *Window {
	return t.window
}

// FocusedSurface returns the surface currently focused within this tab, or
// nil when the tab's tree is empty.
func (t *Tab) FocusedSurface() engine.Surface {
	return t.tree.Focused()
}

// Surfaces returns every surface in this tab in layout order.
func (t *Tab) Surfaces() []engine.Surface {
	return t.tree.Surfaces()
}

// Empty reports whether the tab holds no surfaces. An empty tab is destroyed
// by its window.
func (t *Tab) Empty() bool {
	return t.tree.Empty()
}

// Title returns the user-assigned title when set, otherwise the focused
// surface's title.
func (t *Tab) Title() string {
	if t.userTitle != "" {
		return t.userTitle
	}
	if s := t.FocusedSurface(); s != nil {
		return s.Title()
	}
	return "shell"
}

// SetTitle pins a user-assigned title. An empty string clears the override
// and resumes following the focused surface's title.
func (t *Tab) SetTitle(title string) {
	t.userTitle = title
}

// Split divides the focused surface along the orientation and focuses s.
func (t *Tab) Split(o engine.SplitOrientation, s engine.Surface) {
	t.tree.Split(o, s)
}

// FocusSurface moves focus within the tab to the surface with the given ID.
func (t *Tab) FocusSurface(id string) bool {
	return t.tree.Focus(id)
}

// FocusNextSurface cycles focus through the tab's surfaces in layout order.
func (t *Tab) FocusNextSurface() {
	t.tree.FocusNext()
}

// removeSurface detaches the surface with the given ID from the tab's tree.
func (t *Tab) removeSurface(id string) bool {
	return t.tree.Remove(id)
}

// closeAllSurfaces tears down every surface in the tab.
func (t *Tab) closeAllSurfaces() {
	for _, s := range t.tree.Surfaces() {
		s.Close()
	}
}
