package dom

// SaveUnmodifiedClones walks every node reachable from roots and takes a
// one-time snapshot of each into its own Base.Clone, so later metadata
// emission can report the pre-modifier identifier even after renaming,
// flattening and disambiguation have all run. Must be called exactly
// once, immediately after parsing and before the modifier pipeline
// starts (mirrors dear_bindings.py's dom_root.save_unmodified_clones()).
func SaveUnmodifiedClones(a *Arena, roots []Index) {
	WalkAll(a, roots, func(idx Index) bool {
		n := a.Get(idx)
		if n.Base().Clone == nil {
			n.Base().Clone = n.Clone()
		}
		return true
	})
}
