package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// FlattenNestedClasses promotes every class/struct/union nested inside
// another to its enclosing scope, renaming it "Outer_Inner" (recording
// the pre-rename name in OriginalName for metadata emission).
func FlattenNestedClasses(a *dom.Arena, root dom.Index) {
	for {
		idx := dom.FindFirst(a, root, func(n dom.Node) bool {
			s, ok := n.(*dom.ClassStructUnion)
			if !ok {
				return false
			}
			return isDirectlyNestedInClass(a, s)
		})
		if idx == dom.NoIndex {
			return
		}
		promoteNestedClass(a, idx)
	}
}

func isDirectlyNestedInClass(a *dom.Arena, s *dom.ClassStructUnion) bool {
	parent := s.Parent
	if parent == dom.NoIndex {
		return false
	}
	_, ok := a.Get(parent).(*dom.ClassStructUnion)
	return ok
}

func promoteNestedClass(a *dom.Arena, idx dom.Index) {
	inner := a.Get(idx).(*dom.ClassStructUnion)
	outerIdx := inner.Parent
	outer := a.Get(outerIdx).(*dom.ClassStructUnion)

	originalName := inner.Name
	newName := outer.Name + "_" + inner.Name
	inner.OriginalName = originalName
	inner.Name = newName

	// Any member function still referencing the inner class as its
	// OwningClass (declared but not yet flattened to free functions)
	// must track the rename.
	dom.Walk(a, idx, func(c dom.Index) bool {
		if fn, ok := a.Get(c).(*dom.FunctionDeclaration); ok && fn.OwningClass == originalName {
			fn.OwningClass = newName
		}
		return true
	})

	a.Remove(idx)
	a.InsertAfter(outerIdx, idx)
}
