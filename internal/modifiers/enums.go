package modifiers

import (
	"strconv"
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/errs"
)

// CalculateEnumValues resolves every EnumEntry.Value in document order:
// an entry with no explicit expression takes the previous entry's value
// plus one (0 for the first entry in an enum); an entry with an
// explicit expression is evaluated against the entries already resolved
// in this enum, understanding integer literals, hex literals, named
// references to earlier entries, left shifts ("1 << 4") and bitwise-or
// of previously resolved names. Anything else is left unresolved and
// reported, since it would have to be a GLSL-style macro expansion the
// Python tool doesn't handle either.
func CalculateEnumValues(a *dom.Arena, root dom.Index) error {
	var firstErr error
	dom.Walk(a, root, func(idx dom.Index) bool {
		enum, ok := a.Get(idx).(*dom.EnumElement)
		if !ok {
			return true
		}
		byName := map[string]int64{}
		var next int64
		for _, child := range a.Get(idx).Base().Children {
			entry, ok := a.Get(child).(*dom.EnumEntry)
			if !ok {
				continue
			}
			if !entry.HasExplicitValue {
				entry.Value = next
			} else {
				v, err := evalEnumExpr(entry.ValueExpr, byName)
				if err != nil {
					if firstErr == nil {
						firstErr = errs.Wrap(errs.CodeModifier, err, "resolving enum value for %s.%s", enum.Name, entry.Name)
					}
					return true
				}
				entry.Value = v
			}
			entry.Resolved = true
			byName[entry.Name] = entry.Value
			next = entry.Value + 1
		}
		return true
	})
	return firstErr
}

// evalEnumExpr understands the handful of expression shapes that
// actually occur in ImGui's enum bodies: bare integer/hex literals,
// bare references to an earlier entry in the same enum, "A << N", and
// "A | B | C" chains of earlier entries.
func evalEnumExpr(expr string, known map[string]int64) (int64, error) {
	expr = strings.TrimSpace(expr)
	if strings.Contains(expr, "<<") {
		parts := strings.SplitN(expr, "<<", 2)
		lhs, err := evalEnumAtom(strings.TrimSpace(parts[0]), known)
		if err != nil {
			return 0, err
		}
		rhs, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 0, 64)
		if err != nil {
			return 0, err
		}
		return lhs << uint(rhs), nil
	}
	if strings.Contains(expr, "|") {
		var total int64
		for _, p := range strings.Split(expr, "|") {
			v, err := evalEnumAtom(strings.TrimSpace(p), known)
			if err != nil {
				return 0, err
			}
			total |= v
		}
		return total, nil
	}
	return evalEnumAtom(expr, known)
}

func evalEnumAtom(atom string, known map[string]int64) (int64, error) {
	if v, ok := known[atom]; ok {
		return v, nil
	}
	return strconv.ParseInt(atom, 0, 64)
}

// MarkFlagsEnums tags every EnumElement whose name matches one of the
// configured suffixes (conventionally "Flags_") as IsFlags, so the
// emitters can choose the bitmask-friendly underlying type and the
// metadata emitter can record is_flags_enum for downstream consumers.
func MarkFlagsEnums(a *dom.Arena, root dom.Index, suffixes []string) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		enum, ok := a.Get(idx).(*dom.EnumElement)
		if !ok {
			return true
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(enum.Name, suffix) {
				enum.IsFlags = true
				break
			}
		}
		return true
	})
}
