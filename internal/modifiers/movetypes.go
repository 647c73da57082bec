package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// MoveTypes relocates every top-level node whose name is a key of
// moves to just after the node named by its value (both looked up by
// dom.Name), so ordering constraints that the original header satisfies
// only by coincidence of declaration order (a struct that must be
// defined immediately before the function that first takes it by
// pointer) survive the other modifier passes reordering things.
func MoveTypes(a *dom.Arena, root dom.Index, moves map[string]string) {
	for name, after := range moves {
		idx := dom.FindFirst(a, root, func(n dom.Node) bool { return dom.Name(n) == name })
		anchor := dom.FindFirst(a, root, func(n dom.Node) bool { return dom.Name(n) == after })
		if idx == dom.NoIndex || anchor == dom.NoIndex || idx == anchor {
			continue
		}
		a.Remove(idx)
		a.InsertAfter(anchor, idx)
	}
}
