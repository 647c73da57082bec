package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultArgumentFunctionsSplitsTrailingDefaults(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "Begin", ReturnType: &dom.Type{BaseName: "bool"}})
	p1 := a.Alloc(&dom.FunctionParameter{Name: "name", Type: &dom.Type{BaseName: "char", Pointer: 1, Const: true}})
	p2 := a.Alloc(&dom.FunctionParameter{Name: "flags", Type: &dom.Type{BaseName: "int"}, DefaultTokens: []string{"0"}})
	a.AppendChild(fn, p1)
	a.AppendChild(fn, p2)
	a.AppendChild(root, fn)

	GenerateDefaultArgumentFunctions(a, root, DefaultArgOptions{})

	reduced := a.Get(fn).(*dom.FunctionDeclaration)
	assert.Equal(t, "Begin", reduced.Name)
	require.Len(t, reduced.Base().Children, 1)

	siblings := a.Get(root).Base().Children
	require.Len(t, siblings, 2)
	helper := a.Get(siblings[1]).(*dom.FunctionDeclaration)
	assert.Equal(t, "BeginEx", helper.Name)
	assert.True(t, helper.IsDefaultArgHelper)
	require.Len(t, helper.Base().Children, 2)
}

func TestGenerateDefaultArgumentFunctionsHonorsIgnoreSet(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "ImGuiStorage_SetInt"})
	p1 := a.Alloc(&dom.FunctionParameter{Name: "val", Type: &dom.Type{BaseName: "int"}, DefaultTokens: []string{"0"}})
	a.AppendChild(fn, p1)
	a.AppendChild(root, fn)

	GenerateDefaultArgumentFunctions(a, root, DefaultArgOptions{
		FunctionPrefixGlobs: []string{"ImGuiStorage_*"},
	})

	assert.Len(t, a.Get(root).Base().Children, 1, "prefix-ignored function should not gain an Ex companion")
}

func TestGenerateDefaultArgumentFunctionsTrivialArgOverridesIgnore(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "ImGuiStorage_GetBool"})
	p1 := a.Alloc(&dom.FunctionParameter{Name: "key", Type: &dom.Type{BaseName: "ImGuiID"}})
	p2 := a.Alloc(&dom.FunctionParameter{Name: "flags", Type: &dom.Type{BaseName: "int"}, DefaultTokens: []string{"0"}})
	a.AppendChild(fn, p1)
	a.AppendChild(fn, p2)
	a.AppendChild(root, fn)

	GenerateDefaultArgumentFunctions(a, root, DefaultArgOptions{
		FunctionPrefixGlobs: []string{"ImGuiStorage_*"},
		TrivialArgumentNames: map[string]bool{"flags": true},
	})

	assert.Len(t, a.Get(root).Base().Children, 2, "trivial defaulted arg should still generate the Ex companion")
}

func TestGenerateDefaultArgumentFunctionsSuppressesWhenFirstParamDefaulted(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "Foo", ReturnType: &dom.Type{BaseName: "void"}})
	p1 := a.Alloc(&dom.FunctionParameter{Name: "x", Type: &dom.Type{BaseName: "int"}, DefaultTokens: []string{"5"}})
	a.AppendChild(fn, p1)
	a.AppendChild(root, fn)

	GenerateDefaultArgumentFunctions(a, root, DefaultArgOptions{})

	siblings := a.Get(root).Base().Children
	require.Len(t, siblings, 1, "a sole defaulted parameter must not produce a zero-arg wrapper plus an Ex sibling")

	kept := a.Get(siblings[0]).(*dom.FunctionDeclaration)
	assert.Equal(t, "Foo", kept.Name)
	require.Len(t, kept.Base().Children, 1, "the single parameter must survive, not be stripped")
	assert.False(t, kept.IsDefaultArgHelper)
}
