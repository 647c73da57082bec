package modifiers

import (
	"fmt"
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/dom"
)

// AssignAnonymousTypeNames rewrites the placeholder "anonymousN" name
// the parser gives every anonymous struct/union/enum into one qualified
// by its enclosing named scope, e.g. "OuterName_anonymous0", per
// spec.md §8's boundary behavior for anonymous nested types.
func AssignAnonymousTypeNames(a *dom.Arena, root dom.Index) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		name, anonymous := anonymousName(a.Get(idx))
		if !anonymous || !strings.HasPrefix(name, "anonymous") {
			return true
		}
		parent := a.Get(idx).Base().Parent
		if parent == dom.NoIndex {
			return true
		}
		enclosing := dom.Name(a.Get(parent))
		if enclosing == "" {
			return true
		}
		newName := fmt.Sprintf("%s_%s", enclosing, name)
		dom.SetName(a.Get(idx), newName)
		return true
	})
}

func anonymousName(n dom.Node) (string, bool) {
	switch t := n.(type) {
	case *dom.ClassStructUnion:
		return t.Name, t.Anonymous
	case *dom.EnumElement:
		return t.Name, true
	}
	return "", false
}
