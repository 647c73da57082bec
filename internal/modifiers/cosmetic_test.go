package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveEmptyConditionalsDropsChildlessNode(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	empty := a.Alloc(&dom.PreprocessorConditional{Expr: "0"})
	nonEmpty := a.Alloc(&dom.PreprocessorConditional{Expr: "1"})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "Foo"})
	a.AppendChild(nonEmpty, fn)
	a.AppendChild(root, empty)
	a.AppendChild(root, nonEmpty)

	RemoveEmptyConditionals(a, root)

	children := a.Get(root).Base().Children
	require.Len(t, children, 1)
	assert.Equal(t, nonEmpty, children[0])
}

func TestMergeBlankLinesCombinesConsecutiveMarkers(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	b1 := a.Alloc(&dom.BlankLines{Count: 1})
	b2 := a.Alloc(&dom.BlankLines{Count: 2})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "Foo"})
	a.AppendChild(root, b1)
	a.AppendChild(root, b2)
	a.AppendChild(root, fn)

	MergeBlankLines(a, root)

	children := a.Get(root).Base().Children
	require.Len(t, children, 2)
	merged := a.Get(children[0]).(*dom.BlankLines)
	assert.Equal(t, 3, merged.Count)
}

func TestTrimBlankLinesRemovesLeadingAndTrailing(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	lead := a.Alloc(&dom.BlankLines{Count: 1})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "Foo"})
	trail := a.Alloc(&dom.BlankLines{Count: 1})
	a.AppendChild(root, lead)
	a.AppendChild(root, fn)
	a.AppendChild(root, trail)

	TrimBlankLines(a, root)

	children := a.Get(root).Base().Children
	require.Len(t, children, 1)
	assert.Equal(t, fn, children[0])
}
