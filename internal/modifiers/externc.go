package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// WrapWithExternC marks every HeaderFile under root so the C header
// emitter wraps its declarations in an extern "C" guard, letting the
// generated header be included from both C and C++ translation units.
func WrapWithExternC(a *dom.Arena, roots []dom.Index) {
	for _, root := range roots {
		if hf, ok := a.Get(root).(*dom.HeaderFile); ok {
			hf.WrapExternC = true
		}
	}
}
