package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// ExcludeDefinesFromMetadata tags every #define matching one of the
// configured name patterns (doublestar glob syntax, e.g. "IM_*") so the
// JSON metadata emitter skips it, keeping build-configuration macros
// that don't describe the public API out of generated bindings.
func ExcludeDefinesFromMetadata(a *dom.Arena, root dom.Index, matches func(name string) bool) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		if def, ok := a.Get(idx).(*dom.Define); ok && matches(def.Name) {
			def.ExcludeFromJSON = true
		}
		return true
	})
}
