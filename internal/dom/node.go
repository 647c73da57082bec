package dom

// Index addresses a Node inside an Arena. Nodes never hold an owning
// reference to their parent or children - only indices - so the tree can
// be represented as a flat slice and mutated through a small set of
// primitives that keep both sides of every link consistent.
type Index int32

// NoIndex is the sentinel (-1) meaning "no such node" (e.g. a root
// node's parent, or an unset clone reference).
const NoIndex Index = -1

// Node is implemented by every DOM node kind. Kind-specific data lives on
// the concrete type; Base carries the attributes every node shares.
type Node interface {
	Kind() Kind
	Base() *Base
	// Clone returns a shallow copy of the node's own fields (slices are
	// copied so later mutation of the live node cannot leak into the
	// clone), with Parent/Children/Clone cleared. Used once per node by
	// SaveUnmodifiedClones to keep a snapshot of the pre-modifier state
	// for metadata emission.
	Clone() Node
}

// Base holds the attributes common to every DOM node: its place in the
// tree, its attached comments, the preprocessor conditionals it is
// nested under, and (for file-ish nodes) a destination filename.
type Base struct {
	Self     Index
	Parent   Index
	Children []Index

	LeadingComments  []string
	TrailingComments []string

	// CondContext is the stack of active #if/#ifdef/#ifndef expressions
	// surrounding this node, outermost first. Empty/nil means
	// unconditional.
	CondContext []string

	// DestFilename names the output file this node (or its subtree)
	// should be written to. Meaningful on HeaderFileSet/HeaderFile.
	DestFilename string

	// Clone is the unmodified snapshot captured by SaveUnmodifiedClones,
	// or nil if none has been taken yet.
	Clone Node
}

func (b *Base) Base() *Base { return b }

func (b *Base) cloneBase() Base {
	nb := Base{
		Self:         NoIndex,
		Parent:       NoIndex,
		DestFilename: b.DestFilename,
	}
	nb.LeadingComments = append([]string(nil), b.LeadingComments...)
	nb.TrailingComments = append([]string(nil), b.TrailingComments...)
	nb.CondContext = append([]string(nil), b.CondContext...)
	return nb
}
