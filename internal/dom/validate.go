package dom

import "fmt"

// ValidationError reports a single broken invariant, with enough context
// to locate it (the offending node's Index and a human-readable Detail).
type ValidationError struct {
	Node   Index
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dom validation failed at node %d: %s", e.Node, e.Detail)
}

// ValidateHierarchy checks the structural invariant from spec.md §8:
// every node's parent's children list contains it exactly once, and
// every node other than the supplied roots has a parent.
func ValidateHierarchy(a *Arena, roots []Index) error {
	rootSet := make(map[Index]bool, len(roots))
	for _, r := range roots {
		rootSet[r] = true
	}

	var err error
	WalkAll(a, roots, func(idx Index) bool {
		if err != nil {
			return false
		}
		n := a.Get(idx)
		b := n.Base()

		if b.Self != idx {
			err = &ValidationError{Node: idx, Detail: "Self index does not match arena slot"}
			return false
		}

		if !rootSet[idx] {
			if b.Parent == NoIndex {
				err = &ValidationError{Node: idx, Detail: "non-root node has no parent"}
				return false
			}
			parentChildren := a.Get(b.Parent).Base().Children
			count := 0
			for _, c := range parentChildren {
				if c == idx {
					count++
				}
			}
			if count != 1 {
				err = &ValidationError{Node: idx, Detail: fmt.Sprintf(
					"node appears %d times in parent %d's children (want exactly 1)", count, b.Parent)}
				return false
			}
		}

		for _, c := range b.Children {
			if a.Get(c).Base().Parent != idx {
				err = &ValidationError{Node: c, Detail: fmt.Sprintf(
					"child's parent pointer does not point back to %d", idx)}
				return false
			}
		}
		return true
	})
	return err
}

// ValidateNoDuplicateNames checks, within each scope, that no two
// sibling declarations share a fully qualified name. Intended to run
// after mod_disambiguate_functions / mod_flatten_class_functions /
// mod_flatten_nested_classes have all completed.
func ValidateNoDuplicateNames(a *Arena, roots []Index) error {
	var err error
	var checkScope func(idx Index)
	checkScope = func(idx Index) {
		if err != nil {
			return
		}
		seen := make(map[string]Index)
		for _, c := range a.Get(idx).Base().Children {
			n := a.Get(c)
			name := Name(n)
			if name == "" {
				continue
			}
			// Overloaded functions are expected to share a name until
			// disambiguation runs; callers invoke this check only once
			// that pass has completed, at which point a clash here is a
			// genuine bug.
			if prev, ok := seen[name]; ok {
				err = &ValidationError{Node: c, Detail: fmt.Sprintf(
					"duplicate name %q (also declared as node %d)", name, prev)}
				return
			}
			seen[name] = c
		}
		for _, c := range a.Get(idx).Base().Children {
			checkScope(c)
		}
	}
	for _, r := range roots {
		checkScope(r)
	}
	return err
}

// ValidateEnumValues checks that every EnumEntry within an EnumElement
// has been assigned a value (mod_calculate_enum_values's postcondition).
func ValidateEnumValues(a *Arena, roots []Index) error {
	var err error
	WalkAll(a, roots, func(idx Index) bool {
		if err != nil {
			return false
		}
		if _, ok := a.Get(idx).(*EnumElement); !ok {
			return true
		}
		for _, c := range a.Get(idx).Base().Children {
			entry, ok := a.Get(c).(*EnumEntry)
			if !ok {
				continue
			}
			if !entry.Resolved {
				err = &ValidationError{Node: c, Detail: fmt.Sprintf("enum entry %q has no resolved value", entry.Name)}
				return false
			}
		}
		return true
	})
	return err
}
