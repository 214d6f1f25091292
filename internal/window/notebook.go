package window

// noSelection is the currentIndex sentinel for an empty notebook.
const noSelection = -1

// Notebook is an ordered, mutable sequence of tabs with a single current
// selection. Insertion order is the navigation order. While the notebook is
// non-empty the selection is always a valid index; when empty it is unset.
type Notebook struct {
	tabs         []*Tab
	currentIndex int
}

// NewNotebook returns an empty notebook with no selection.
func NewNotebook() *Notebook {
	return &Notebook{currentIndex: noSelection}
}

// Len returns the number of tabs.
func (n *Notebook) Len() int {
	return len(n.tabs)
}

// Tabs returns the tabs in navigation order. The returned slice is shared;
// callers must not mutate it.
func (n *Notebook) Tabs() []*Tab {
	return n.tabs
}

// Current returns the selected tab, or nil when the notebook is empty.
func (n *Notebook) Current() *Tab {
	if n.currentIndex == noSelection {
		return nil
	}
	return n.tabs[n.currentIndex]
}

// CurrentIndex returns the selected index, or -1 when the notebook is empty.
func (n *Notebook) CurrentIndex() int {
	return n.currentIndex
}

// IndexOf returns t's position, or -1 when t is not in the notebook.
func (n *Notebook) IndexOf(t *Tab) int {
	for i, tab := range n.tabs {
		if tab == t {
			return i
		}
	}
	return -1
}

// Append attaches t at the end and makes it the current selection.
func (n *Notebook) Append(t *Tab) {
	n.tabs = append(n.tabs, t)
	n.currentIndex = len(n.tabs) - 1
}

// Remove takes t out of the notebook. When the current tab is removed the
// selection moves to the tab that shifted into the vacated slot, or to the
// new last tab when the removed tab was last. Returns false when t is not in
// the notebook.
func (n *Notebook) Remove(t *Tab) bool {
	idx := n.IndexOf(t)
	if idx == -1 {
		return false
	}

	n.tabs = append(n.tabs[:idx], n.tabs[idx+1:]...)

	if len(n.tabs) == 0 {
		n.currentIndex = noSelection
		return true
	}

	switch {
	case idx < n.currentIndex:
		n.currentIndex--
	case idx == n.currentIndex:
		if n.currentIndex > len(n.tabs)-1 {
			n.currentIndex = len(n.tabs) - 1
		}
	}
	return true
}

// GotoNext advances the selection by one. Clamps at the last tab; it never
// wraps around.
func (n *Notebook) GotoNext() {
	if n.currentIndex == noSelection {
		return
	}
	if n.currentIndex < len(n.tabs)-1 {
		n.currentIndex++
	}
}

// GotoPrevious moves the selection back by one. Clamps at the first tab; it
// never wraps around.
func (n *Notebook) GotoPrevious() {
	if n.currentIndex == noSelection {
		return
	}
	if n.currentIndex > 0 {
		n.currentIndex--
	}
}

// GotoNth selects the nth tab, 1-based. Zero is a reserved sentinel and never
// selects; out-of-bounds ordinals are a no-op.
func (n *Notebook) GotoNth(nth int) {
	if nth <= 0 || nth > len(n.tabs) {
		return
	}
	n.currentIndex = nth - 1
}

// GotoLast selects the last tab. No-op on an empty notebook.
func (n *Notebook) GotoLast() {
	if len(n.tabs) == 0 {
		return
	}
	n.currentIndex = len(n.tabs) - 1
}
