package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExplodedVariadicFunctionsGeneratesArgCountedSiblings(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "Text", ReturnType: &dom.Type{BaseName: "void"}})
	fmtParam := a.Alloc(&dom.FunctionParameter{Name: "fmt", Type: &dom.Type{BaseName: "char", Pointer: 1, Const: true}})
	varargs := a.Alloc(&dom.FunctionParameter{Name: "", IsVarArgs: true})
	a.AppendChild(fn, fmtParam)
	a.AppendChild(fn, varargs)
	a.AppendChild(root, fn)

	AddExplodedVariadicFunctions(a, root, 2)

	siblings := a.Get(root).Base().Children
	require.Len(t, siblings, 3)

	v0 := a.Get(siblings[1]).(*dom.FunctionDeclaration)
	assert.Equal(t, "TextV0", v0.Name)
	assert.True(t, v0.IsExplodedVariadicHelper)
	assert.Len(t, v0.Base().Children, 1)

	v1 := a.Get(siblings[2]).(*dom.FunctionDeclaration)
	assert.Equal(t, "TextV1", v1.Name)
	assert.Len(t, v1.Base().Children, 2)
	assert.NotEqual(t, v0.Name, v1.Name)
}

func TestAddUnformattedFunctionsInsertsTextRangeSibling(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "TextV", ReturnType: &dom.Type{BaseName: "void"}})
	a.AppendChild(root, fn)

	AddUnformattedFunctions(a, root, map[string]bool{"TextV": true})

	siblings := a.Get(root).Base().Children
	require.Len(t, siblings, 2)
	helper := a.Get(siblings[1]).(*dom.FunctionDeclaration)
	assert.Equal(t, "TextVUnformatted", helper.Name)
	require.Len(t, helper.Base().Children, 2)
}
