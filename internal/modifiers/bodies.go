package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// RemoveFunctionBodies drops the parsed-body marker from every
// function. The parser never retains body tokens (they are skipped
// during parsing, see cppparser.skipBracedBlock), so there is nothing
// left to delete here but the HadBody flag itself - kept as an explicit
// pass so the driver's invocation order documents the precondition the
// emitters rely on (no function in the DOM claims to still have a
// body by the time emission starts).
func RemoveFunctionBodies(a *dom.Arena, root dom.Index) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		if fn, ok := a.Get(idx).(*dom.FunctionDeclaration); ok {
			fn.HadBody = false
		}
		return true
	})
}
