package window

// Registry is the process-wide set of open windows, in creation order.
// Windows enter on creation and leave on destroy; nothing else mutates it.
// It runs on the UI event loop and needs no locking.
type Registry struct {
	windows []*Window
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers w. Registering the same window twice is a no-op.
func (r *Registry) Add(w *Window) {
	for _, existing := range r.windows {
		if existing == w {
			return
		}
	}
	r.windows = append(r.windows, w)
}

// Remove unregisters w. Returns false when w was not registered.
func (r *Registry) Remove(w *Window) bool {
	for i, existing := range r.windows {
		if existing == w {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the window with the given ID, or nil.
func (r *Registry) Get(id string) *Window {
	for _, w := range r.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

// Len returns the number of open windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

// Windows returns the open windows in creation order. The returned slice is
// shared; callers must not mutate it.
func (r *Registry) Windows() []*Window {
	return r.windows
}

// Each calls fn for every open window in creation order. fn must not create
// or destroy windows.
func (r *Registry) Each(fn func(*Window)) {
	for _, w := range r.windows {
		fn(w)
	}
}
