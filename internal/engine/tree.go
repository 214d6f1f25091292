package engine

// SplitOrientation is the axis a surface is divided along.
type SplitOrientation int

const (
	// SplitHorizontal places the new surface to the right of the existing one.
	SplitHorizontal SplitOrientation = iota
	// SplitVertical places the new surface below the existing one.
	SplitVertical
)

func (o SplitOrientation) String() string {
	if o == SplitVertical {
		return "vertical"
	}
	return "horizontal"
}

// treeNode is either a leaf holding one surface or an internal node holding
// two children divided along an orientation. Never both.
type treeNode struct {
	surface Surface
	orient  SplitOrientation
	first   *treeNode
	second  *treeNode
	parent  *treeNode
}

func (n *treeNode) isLeaf() bool {
	return n.surface != nil
}

// firstLeaf returns the leftmost leaf under n.
func (n *treeNode) firstLeaf() *treeNode {
	for !n.isLeaf() {
		n = n.first
	}
	return n
}

// Tree is an ordered binary split tree of surfaces. One tab owns one tree.
// Exactly one leaf holds focus while the tree is non-empty.
type Tree struct {
	root    *treeNode
	focused *treeNode
}

// NewTree returns a tree holding a single focused surface.
func NewTree(s Surface) *Tree {
	leaf := &treeNode{surface: s}
	return &Tree{root: leaf, focused: leaf}
}

// Empty reports whether the tree holds no surfaces.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Count returns the number of surfaces in the tree.
func (t *Tree) Count() int {
	return len(t.Surfaces())
}

// Focused returns the surface holding focus, or nil when the tree is empty.
func (t *Tree) Focused() Surface {
	if t.focused == nil {
		return nil
	}
	return t.focused.surface
}

// Focus moves focus to the surface with the given ID. Returns false when no
// such surface is in the tree.
func (t *Tree) Focus(id string) bool {
	node := t.find(id)
	if node == nil {
		return false
	}
	t.focused = node
	return true
}

// Split divides the focused leaf along the given orientation, placing s in
// the second slot and moving focus to it. No-op on an empty tree.
func (t *Tree) Split(o SplitOrientation, s Surface) {
	if t.focused == nil {
		return
	}

	target := t.focused
	existing := &treeNode{surface: target.surface, parent: target}
	added := &treeNode{surface: s, parent: target}

	// The focused leaf becomes an internal node in place, so the parent
	// pointers above it stay valid.
	target.surface = nil
	target.orient = o
	target.first = existing
	target.second = added

	t.focused = added
}

// Remove takes the surface with the given ID out of the tree. The sibling
// subtree is promoted into the removed leaf's slot. When the removed leaf
// held focus, focus moves to the first leaf of the promoted sibling. Returns
// false when no such surface is in the tree.
func (t *Tree) Remove(id string) bool {
	node := t.find(id)
	if node == nil {
		return false
	}

	hadFocus := node == t.focused

	parent := node.parent
	if parent == nil {
		t.root = nil
		t.focused = nil
		return true
	}

	sibling := parent.first
	if sibling == node {
		sibling = parent.second
	}

	// Promote the sibling's contents into the parent slot.
	parent.surface = sibling.surface
	parent.orient = sibling.orient
	parent.first = sibling.first
	parent.second = sibling.second
	if parent.first != nil {
		parent.first.parent = parent
	}
	if parent.second != nil {
		parent.second.parent = parent
	}

	if hadFocus {
		t.focused = parent.firstLeaf()
	} else if t.focused == sibling {
		t.focused = parent
	}
	return true
}

// Surfaces returns all surfaces in layout order.
func (t *Tree) Surfaces() []Surface {
	var out []Surface
	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		if n.isLeaf() {
			out = append(out, n.surface)
			return
		}
		walk(n.first)
		walk(n.second)
	}
	walk(t.root)
	return out
}

// FocusNext moves focus to the next surface in layout order, wrapping at the
// end. No-op with zero or one surface.
func (t *Tree) FocusNext() {
	surfaces := t.Surfaces()
	if len(surfaces) < 2 || t.focused == nil {
		return
	}
	for i, s := range surfaces {
		if s.ID() == t.focused.surface.ID() {
			next := surfaces[(i+1)%len(surfaces)]
			t.Focus(next.ID())
			return
		}
	}
}

func (t *Tree) find(id string) *treeNode {
	var found *treeNode
	var walk func(n *treeNode)
	walk = func(n *treeNode) {
		if n == nil || found != nil {
			return
		}
		if n.isLeaf() {
			if n.surface.ID() == id {
				found = n
			}
			return
		}
		walk(n.first)
		walk(n.second)
	}
	walk(t.root)
	return found
}
