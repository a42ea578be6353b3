package tested

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterMode selects which identity components a NameFilter matches on.
type FilterMode int

const (
	// FilterNone excludes nothing.
	FilterNone FilterMode = iota
	// FilterGroup keeps a single group, excluding all others.
	FilterGroup
	// FilterGroupCase keeps one case of one group, matched by display
	// name. Name matching can only happen once StartCase fires, so this
	// mode is enforced inside the Runtime at execution time.
	FilterGroupCase
	// FilterGroupOrdinal keeps one case of one group, matched by ordinal
	// before the body is invoked.
	FilterGroupOrdinal
)

// NameFilter is a pure predicate over group and case identity. Matching is
// exact and case-sensitive; there are no globs. The zero value excludes
// nothing.
type NameFilter struct {
	Mode    FilterMode
	Group   string
	Case    string
	Ordinal int
}

// GroupExcluded reports whether a group with the given name is excluded
// outright, without invoking any of its cases.
func (f NameFilter) GroupExcluded(name string) bool {
	switch f.Mode {
	case FilterNone:
		return false
	default:
		return name != f.Group
	}
}

// CaseExcludedByNumber reports whether the case with the given ordinal is
// excluded before invocation.
func (f NameFilter) CaseExcludedByNumber(ordinal int) bool {
	return f.Mode == FilterGroupOrdinal && ordinal != f.Ordinal
}

// CaseExcludedByName reports whether a case announcing the given display
// name is excluded. Decidable only at execution time, once StartCase has
// fired.
func (f NameFilter) CaseExcludedByName(name string) bool {
	return f.Mode == FilterGroupCase && name != f.Case
}

// ParseAddress parses a selector address into a NameFilter.
//
// Grammar:
//
//	group       whole group
//	group:*     whole group (same as bare group)
//	group:case  one case by display name
//	group:#N    one case by ordinal
//
// The group part must be non-empty. Addresses never match partially; an
// unparseable address is an error, not an empty selection.
func ParseAddress(address string) (NameFilter, error) {
	group, sel, ok := strings.Cut(address, ":")
	if group == "" {
		return NameFilter{}, fmt.Errorf("address %q: empty group name", address)
	}
	if !ok || sel == "*" {
		return NameFilter{Mode: FilterGroup, Group: group}, nil
	}
	if sel == "" {
		return NameFilter{}, fmt.Errorf("address %q: empty case selector", address)
	}
	if rest, isOrdinal := strings.CutPrefix(sel, "#"); isOrdinal {
		// Ordinals are declaration positions: plain digits, no sign.
		n, err := strconv.ParseUint(rest, 10, 31)
		if err != nil {
			return NameFilter{}, fmt.Errorf("address %q: bad ordinal %q", address, rest)
		}
		return NameFilter{Mode: FilterGroupOrdinal, Group: group, Ordinal: int(n)}, nil
	}
	return NameFilter{Mode: FilterGroupCase, Group: group, Case: sel}, nil
}
