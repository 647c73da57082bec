package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEnumValuesImplicitSequence(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	enum := a.Alloc(&dom.EnumElement{Name: "ImGuiCol_"})
	a.AppendChild(root, enum)
	e0 := a.Alloc(&dom.EnumEntry{Name: "ImGuiCol_Text"})
	e1 := a.Alloc(&dom.EnumEntry{Name: "ImGuiCol_TextDisabled"})
	a.AppendChild(enum, e0)
	a.AppendChild(enum, e1)

	require.NoError(t, CalculateEnumValues(a, root))

	assert.EqualValues(t, 0, a.Get(e0).(*dom.EnumEntry).Value)
	assert.EqualValues(t, 1, a.Get(e1).(*dom.EnumEntry).Value)
	assert.True(t, a.Get(e1).(*dom.EnumEntry).Resolved)
}

func TestCalculateEnumValuesBitShiftAndReference(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	enum := a.Alloc(&dom.EnumElement{Name: "ImGuiFlags_"})
	a.AppendChild(root, enum)
	none := a.Alloc(&dom.EnumEntry{Name: "ImGuiFlags_None", HasExplicitValue: true, ValueExpr: "0"})
	bit := a.Alloc(&dom.EnumEntry{Name: "ImGuiFlags_Bit0", HasExplicitValue: true, ValueExpr: "1 << 0"})
	combo := a.Alloc(&dom.EnumEntry{Name: "ImGuiFlags_Combo", HasExplicitValue: true, ValueExpr: "ImGuiFlags_None | ImGuiFlags_Bit0"})
	a.AppendChild(enum, none)
	a.AppendChild(enum, bit)
	a.AppendChild(enum, combo)

	require.NoError(t, CalculateEnumValues(a, root))

	assert.EqualValues(t, 0, a.Get(none).(*dom.EnumEntry).Value)
	assert.EqualValues(t, 1, a.Get(bit).(*dom.EnumEntry).Value)
	assert.EqualValues(t, 1, a.Get(combo).(*dom.EnumEntry).Value)
}

func TestMarkFlagsEnumsMatchesConfiguredSuffix(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	flags := a.Alloc(&dom.EnumElement{Name: "ImGuiWindowFlags_"})
	plain := a.Alloc(&dom.EnumElement{Name: "ImGuiCol_"})
	a.AppendChild(root, flags)
	a.AppendChild(root, plain)

	MarkFlagsEnums(a, root, []string{"Flags_"})

	assert.True(t, a.Get(flags).(*dom.EnumElement).IsFlags)
	assert.False(t, a.Get(plain).(*dom.EnumElement).IsFlags)
}
