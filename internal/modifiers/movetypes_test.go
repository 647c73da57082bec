package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
)

func TestMoveTypesRelocatesAfterAnchor(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	first := a.Alloc(&dom.ClassStructUnion{Name: "A"})
	second := a.Alloc(&dom.ClassStructUnion{Name: "B"})
	third := a.Alloc(&dom.ClassStructUnion{Name: "C"})
	a.AppendChild(root, first)
	a.AppendChild(root, second)
	a.AppendChild(root, third)

	MoveTypes(a, root, map[string]string{"A": "C"})

	names := make([]string, 0, 3)
	for _, c := range a.Get(root).Base().Children {
		names = append(names, dom.Name(a.Get(c)))
	}
	assert.Equal(t, []string{"B", "C", "A"}, names)
}
