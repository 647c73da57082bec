// Package modifiers implements the ordered tree-rewrite passes that
// turn a parsed C++ DOM into one expressible in C. Each modifier is a
// narrow, pure function over an arena and a root index; internal/driver
// is the only caller that knows the fixed order they must run in.
package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// AddStandardIncludes inserts <stdbool.h> and <stdint.h> at the front
// of a main (non-back-end) header's include list, needed because the C
// emitter uses bool/uint32_t-family types the original C++ left to
// implicit language support.
func AddStandardIncludes(a *dom.Arena, root dom.Index) {
	want := []string{"stdint.h", "stdbool.h"}
	existing := map[string]bool{}
	for _, c := range a.Get(root).Base().Children {
		if inc, ok := a.Get(c).(*dom.Include); ok && inc.IsSystem {
			existing[inc.Path] = true
		}
	}
	firstChild := dom.NoIndex
	if children := a.Get(root).Base().Children; len(children) > 0 {
		firstChild = children[0]
	}
	for _, path := range want {
		if existing[path] {
			continue
		}
		idx := a.Alloc(&dom.Include{Path: path, IsSystem: true})
		if firstChild == dom.NoIndex {
			a.AppendChild(root, idx)
		} else {
			a.InsertBefore(firstChild, idx)
		}
	}
}

// defaultRemoveIncludes is the default set of C++-only headers the
// original omits from the generated C header (string/vector-family
// standard headers a pure-C consumer has no use for).
var defaultRemoveIncludes = map[string]bool{
	"string": true, "vector": true, "map": true, "new": true,
}

// RemoveUnneededIncludes drops #include directives for headers that
// only matter to the C++ source, not the generated C header.
func RemoveUnneededIncludes(a *dom.Arena, root dom.Index) {
	for _, c := range append([]dom.Index(nil), a.Get(root).Base().Children...) {
		if inc, ok := a.Get(c).(*dom.Include); ok && defaultRemoveIncludes[inc.Path] {
			a.Remove(c)
		}
	}
}

// RewriteIncludeForBackend rewrites a literal "imgui.h" include to
// "cimgui.h" when the header being processed is a back-end header (one
// that references the generated C binding instead of the original
// C++ API), per spec.md's Back-end header glossary entry.
func RewriteIncludeForBackend(a *dom.Arena, root dom.Index) {
	for _, c := range a.Get(root).Base().Children {
		if inc, ok := a.Get(c).(*dom.Include); ok && inc.Path == "imgui.h" {
			inc.Path = "cimgui.h"
		}
	}
}

// AddBackendForwardDeclaration injects a forward declaration for
// ImDrawData ahead of the first declaration, needed by back-end headers
// that reference it by pointer without otherwise seeing its definition.
func AddBackendForwardDeclaration(a *dom.Arena, root dom.Index) {
	fwd := &dom.ClassStructUnion{Name: "ImDrawData", StructKind: dom.StructKindStruct, ForwardDeclaration: true}
	idx := a.Alloc(fwd)
	children := a.Get(root).Base().Children
	if len(children) == 0 {
		a.AppendChild(root, idx)
		return
	}
	a.InsertBefore(children[0], idx)
}
