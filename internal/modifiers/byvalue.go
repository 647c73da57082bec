package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// MarkByValueStructs tags every ClassStructUnion named in names as
// ByValue, so ConvertByValueStructArgsToPointers and the template
// flattener's by-value heuristics leave them alone - these are structs
// deemed small and layout-stable enough to cross the C boundary
// directly (e.g. ImVec2, ImVec4).
func MarkByValueStructs(a *dom.Arena, root dom.Index, names map[string]bool) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		if s, ok := a.Get(idx).(*dom.ClassStructUnion); ok && names[s.Name] {
			s.ByValue = true
		}
		return true
	})
}

// ConvertByValueStructArgsToPointers is the optional
// --nopassingstructsbyvalue conversion: every parameter whose type
// names a struct that is not marked ByValue is rewritten from "T" to
// "const T*", with the C++ bridge dereferencing at the call site.
// byValueNames is the set of struct names MarkByValueStructs tagged.
func ConvertByValueStructArgsToPointers(a *dom.Arena, root dom.Index, byValueNames map[string]bool) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		param, ok := a.Get(idx).(*dom.FunctionParameter)
		if !ok {
			return true
		}
		t := param.Type
		if t == nil || t.Pointer > 0 || t.Reference || t.FuncPtr != nil {
			return true
		}
		if byValueNames[t.BaseName] {
			return true
		}
		if !isKnownStructName(a, root, t.BaseName) {
			return true
		}
		t.Const = true
		t.Pointer = 1
		t.PointerLevelConst = []bool{false}
		t.ValueConvertedToPointer = true
		return true
	})
}

func isKnownStructName(a *dom.Arena, root dom.Index, name string) bool {
	return dom.FindFirst(a, root, func(n dom.Node) bool {
		s, ok := n.(*dom.ClassStructUnion)
		return ok && s.Name == name
	}) != dom.NoIndex
}
