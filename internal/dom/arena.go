package dom

// Arena owns every Node in a DOM by value-ish index: nodes reference
// each other only via Index, never via Go pointer, so the parent/child
// cycle described in spec.md §9 doesn't fight the garbage collector or
// make cloning ambiguous.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc adds a new node to the arena and returns its Index. The node's
// Parent starts as NoIndex; call AppendChild/InsertChild to place it.
func (a *Arena) Alloc(n Node) Index {
	idx := Index(len(a.nodes))
	b := n.Base()
	b.Self = idx
	b.Parent = NoIndex
	a.nodes = append(a.nodes, n)
	return idx
}

// Get returns the node at idx, or nil for NoIndex.
func (a *Arena) Get(idx Index) Node {
	if idx == NoIndex {
		return nil
	}
	return a.nodes[idx]
}

// Len returns the number of nodes ever allocated (including any removed
// from the tree but not yet garbage - removal only unlinks, it does not
// compact the arena).
func (a *Arena) Len() int { return len(a.nodes) }

// AppendChild links child as the last child of parent.
func (a *Arena) AppendChild(parent, child Index) {
	pb := a.Get(parent).Base()
	pb.Children = append(pb.Children, child)
	a.Get(child).Base().Parent = parent
}

// InsertChildAt links child as parent's i-th child, shifting later
// children right.
func (a *Arena) InsertChildAt(parent Index, i int, child Index) {
	pb := a.Get(parent).Base()
	pb.Children = append(pb.Children, NoIndex)
	copy(pb.Children[i+1:], pb.Children[i:])
	pb.Children[i] = child
	a.Get(child).Base().Parent = parent
}

// InsertBefore inserts newChild immediately before existing in existing's
// parent's children list.
func (a *Arena) InsertBefore(existing, newChild Index) {
	pb := a.Get(existing).Base()
	parent := pb.Parent
	children := a.Get(parent).Base().Children
	for i, c := range children {
		if c == existing {
			a.InsertChildAt(parent, i, newChild)
			return
		}
	}
}

// InsertAfter inserts newChild immediately after existing in existing's
// parent's children list.
func (a *Arena) InsertAfter(existing, newChild Index) {
	pb := a.Get(existing).Base()
	parent := pb.Parent
	children := a.Get(parent).Base().Children
	for i, c := range children {
		if c == existing {
			a.InsertChildAt(parent, i+1, newChild)
			return
		}
	}
}

// RemoveChild unlinks child from parent's children list and clears
// child's Parent. It does not recurse - child's own children (if any)
// are left dangling and unreachable unless re-attached elsewhere.
func (a *Arena) RemoveChild(parent, child Index) {
	pb := a.Get(parent).Base()
	for i, c := range pb.Children {
		if c == child {
			pb.Children = append(pb.Children[:i], pb.Children[i+1:]...)
			break
		}
	}
	a.Get(child).Base().Parent = NoIndex
}

// Remove unlinks a node from its current parent.
func (a *Arena) Remove(child Index) {
	parent := a.Get(child).Base().Parent
	if parent == NoIndex {
		return
	}
	a.RemoveChild(parent, child)
}

// Replace swaps oldChild for newChild at the same position in oldChild's
// parent's children list.
func (a *Arena) Replace(oldChild, newChild Index) {
	pb := a.Get(oldChild).Base()
	parent := pb.Parent
	children := a.Get(parent).Base().Children
	for i, c := range children {
		if c == oldChild {
			children[i] = newChild
			a.Get(newChild).Base().Parent = parent
			a.Get(oldChild).Base().Parent = NoIndex
			return
		}
	}
}
