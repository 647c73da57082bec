package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
)

func TestAddExportMacroRenamesLegacyDefine(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	def := a.Alloc(&dom.Define{Name: "IMGUI_API", Value: ""})
	a.AppendChild(root, def)

	AddExportMacro(a, root, "CIMGUI_API")

	assert.Equal(t, "CIMGUI_API", a.Get(def).(*dom.Define).Name)
}

func TestAddExportMacroDefaultsWhenEmpty(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	def := a.Alloc(&dom.Define{Name: "IMGUI_API"})
	a.AppendChild(root, def)

	AddExportMacro(a, root, "")

	assert.Equal(t, "CIMGUI_API", a.Get(def).(*dom.Define).Name)
}
