package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardDeclareStructsInsertsMissingOnly(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	existing := a.Alloc(&dom.ClassStructUnion{Name: "ImDrawList"})
	a.AppendChild(root, existing)

	ForwardDeclareStructs(a, root, []string{"ImDrawList", "ImDrawData"})

	children := a.Get(root).Base().Children
	require.Len(t, children, 2)
	fwd := a.Get(children[0]).(*dom.ClassStructUnion)
	assert.Equal(t, "ImDrawData", fwd.Name)
	assert.True(t, fwd.ForwardDeclaration)
}

func TestRemoveEnumForwardDeclarationsDropsEmptyWithoutDefinition(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fwd := a.Alloc(&dom.EnumElement{Name: "ImGuiCol_"})
	full := a.Alloc(&dom.EnumElement{Name: "ImGuiKey_"})
	entry := a.Alloc(&dom.EnumEntry{Name: "ImGuiKey_Tab"})
	a.AppendChild(full, entry)
	a.AppendChild(root, fwd)
	a.AppendChild(root, full)

	RemoveEnumForwardDeclarations(a, root)

	children := a.Get(root).Base().Children
	require.Len(t, children, 1)
	assert.Equal(t, full, children[0])
}
