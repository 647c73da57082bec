package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// GenerateStringViewHelpers tags every ClassStructUnion named in
// stringViewNames (e.g. "ImStr") as both ByValue and StringView, so it
// crosses the C boundary as a value type rather than a pointer to a C++
// object. It only sets those two flags: the struct's fields are left as
// they are, and no construction helper is generated.
func GenerateStringViewHelpers(a *dom.Arena, root dom.Index, stringViewNames map[string]bool) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		s, ok := a.Get(idx).(*dom.ClassStructUnion)
		if !ok || !stringViewNames[s.Name] {
			return true
		}
		s.ByValue = true
		s.StringView = true
		return true
	})
}
