package jsonmeta

import (
	"encoding/json"
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitCollectsFunctionsAndStructs(t *testing.T) {
	a := dom.NewArena()
	set := a.Alloc(&dom.HeaderFileSet{})
	hf := a.Alloc(&dom.HeaderFile{OriginalFileName: "imgui.h"})
	a.AppendChild(set, hf)

	st := a.Alloc(&dom.ClassStructUnion{Name: "ImVec2"})
	field := a.Alloc(&dom.FieldDeclaration{Type: &dom.Type{BaseName: "float"}, Names: []string{"x"}})
	a.AppendChild(st, field)
	a.AppendChild(hf, st)

	fn := a.Alloc(&dom.FunctionDeclaration{Name: "ImGui_GetVersion", OriginalName: "GetVersion", ReturnType: &dom.Type{BaseName: "char", Pointer: 1, Const: true}})
	a.AppendChild(hf, fn)

	out, err := Emit(a, set)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Structs, 1)
	assert.Equal(t, "ImVec2", doc.Structs[0].Name)
	require.Len(t, doc.Functions, 1)
	assert.Equal(t, "GetVersion", doc.Functions[0].OriginalName)
}

func TestEmitExcludesTaggedDefines(t *testing.T) {
	a := dom.NewArena()
	set := a.Alloc(&dom.HeaderFileSet{})
	hf := a.Alloc(&dom.HeaderFile{})
	a.AppendChild(set, hf)
	def := a.Alloc(&dom.Define{Name: "IM_ASSERT", ExcludeFromJSON: true})
	a.AppendChild(hf, def)

	out, err := Emit(a, set)
	require.NoError(t, err)
	assert.NotContains(t, out, "IM_ASSERT")
}
