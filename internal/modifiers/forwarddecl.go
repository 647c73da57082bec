package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// ForwardDeclareStructs inserts a forward declaration ("typedef struct
// Name Name;") at the top of root for every struct named in names that
// has no declaration or definition anywhere under root, so the
// generated C header stays valid when structs reference each other out
// of definition order (a common case once MoveTypes or template
// flattening has reordered things). Only the given names are
// considered: it does not scan the tree for structs used before their
// definition, and a nil names list adds nothing.
func ForwardDeclareStructs(a *dom.Arena, root dom.Index, names []string) {
	existing := map[string]bool{}
	dom.Walk(a, root, func(idx dom.Index) bool {
		if s, ok := a.Get(idx).(*dom.ClassStructUnion); ok {
			existing[s.Name] = true
		}
		return true
	})

	children := a.Get(root).Base().Children
	firstIdx := dom.NoIndex
	if len(children) > 0 {
		firstIdx = children[0]
	}

	for _, name := range names {
		if existing[name] {
			continue
		}
		fwdIdx := a.Alloc(&dom.ClassStructUnion{Name: name, StructKind: dom.StructKindStruct, ForwardDeclaration: true})
		if firstIdx == dom.NoIndex {
			a.AppendChild(root, fwdIdx)
		} else {
			a.InsertBefore(firstIdx, fwdIdx)
		}
		existing[name] = true
	}
}

// RemoveEnumForwardDeclarations drops any EnumElement node marked as a
// bare forward declaration (no entries, no definition following),
// since C enums can't be forward-declared the way structs can and the
// emitter would otherwise produce an empty "typedef enum Name Name;"
// that the compiler rejects if the full definition never arrives
// because mod_remove_structs (or similar) stripped it.
func RemoveEnumForwardDeclarations(a *dom.Arena, root dom.Index) {
	names := map[string]bool{}
	dom.Walk(a, root, func(idx dom.Index) bool {
		if e, ok := a.Get(idx).(*dom.EnumElement); ok && len(e.Base().Children) > 0 {
			names[e.Name] = true
		}
		return true
	})

	toRemove := dom.FindAll(a, root, func(n dom.Node) bool {
		e, ok := n.(*dom.EnumElement)
		return ok && len(e.Base().Children) == 0 && !names[e.Name]
	})
	for _, idx := range toRemove {
		a.Remove(idx)
	}
}
