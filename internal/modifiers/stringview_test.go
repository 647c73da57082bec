package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
)

func TestGenerateStringViewHelpersTagsConfiguredStruct(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	str := a.Alloc(&dom.ClassStructUnion{Name: "ImStr"})
	other := a.Alloc(&dom.ClassStructUnion{Name: "ImVec2"})
	a.AppendChild(root, str)
	a.AppendChild(root, other)

	GenerateStringViewHelpers(a, root, map[string]bool{"ImStr": true})

	s := a.Get(str).(*dom.ClassStructUnion)
	assert.True(t, s.ByValue)
	assert.True(t, s.StringView)
	o := a.Get(other).(*dom.ClassStructUnion)
	assert.False(t, o.StringView)
}
