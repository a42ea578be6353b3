package tested

// Group is one module's committed contribution to the catalog: a named,
// ordered sequence of cases. Groups are created by RegisterGroup, owned by
// the Registry, and never mutated afterward.
type Group struct {
	// Name identifies the group in queries. Names need not be unique;
	// lookups use first-match in registration order.
	Name string

	// Source is a diagnostic identifier for the module that contributed
	// the group, typically a file path.
	Source string

	cases []Case
}

// Cases returns the group's cases in declaration order. The returned slice
// must not be modified.
func (g *Group) Cases() []Case {
	return g.cases
}

// Len reports the number of cases in the group.
func (g *Group) Len() int {
	return len(g.cases)
}
