package dom

// DeepClone copies idx and every descendant into fresh arena slots,
// preserving structure, and returns the new subtree's root index. Used
// by modifiers that stamp out independent copies of a subtree (template
// instantiation, type relocation) rather than merely rewriting one in
// place.
func DeepClone(a *Arena, idx Index) Index {
	if idx == NoIndex {
		return NoIndex
	}
	clone := a.Get(idx).Clone()
	newIdx := a.Alloc(clone)
	for _, c := range a.Get(idx).Base().Children {
		newChild := DeepClone(a, c)
		a.AppendChild(newIdx, newChild)
	}
	return newIdx
}
