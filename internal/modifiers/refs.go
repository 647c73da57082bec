package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// ConvertReferencesToPointers rewrites every "T&" parameter or return
// type in the tree to "T*", setting RefConvertedToPointer so the C++
// bridge emitter knows to dereference at the call site. C has no
// reference type, so this runs unconditionally (unlike the optional
// by-value-to-pointer conversion).
func ConvertReferencesToPointers(a *dom.Arena, root dom.Index) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		switch n := a.Get(idx).(type) {
		case *dom.FunctionDeclaration:
			convertRef(n.ReturnType)
		case *dom.FunctionParameter:
			convertRef(n.Type)
		case *dom.FieldDeclaration:
			convertRef(n.Type)
		}
		return true
	})
}

func convertRef(t *dom.Type) {
	if t == nil || !t.Reference {
		return
	}
	t.Reference = false
	t.RefConvertedToPointer = true
	t.Pointer++
	t.PointerLevelConst = append(t.PointerLevelConst, false)
}
