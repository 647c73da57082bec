package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// MarkInternalMembers tags every non-public member function as Internal,
// and every function/field whose name ends in "_" as Internal
// regardless of access, matching the ImGui convention of
// trailing-underscore names marking implementation-detail members. The
// C header and C++ bridge emitters skip functions tagged Internal.
func MarkInternalMembers(a *dom.Arena, root dom.Index) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		switch n := a.Get(idx).(type) {
		case *dom.FunctionDeclaration:
			if n.Access != dom.AccessPublic || hasTrailingUnderscore(n.Name) {
				n.Internal = true
			}
		case *dom.FieldDeclaration:
			if n.Internal || fieldHasTrailingUnderscore(n) {
				n.Internal = true
			}
		}
		return true
	})
}

func hasTrailingUnderscore(name string) bool {
	return len(name) > 0 && name[len(name)-1] == '_'
}

func fieldHasTrailingUnderscore(f *dom.FieldDeclaration) bool {
	for _, n := range f.Names {
		if hasTrailingUnderscore(n) {
			return true
		}
	}
	return false
}
