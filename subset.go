package tested

// Subset is an unexecuted view of a Registry narrowed by a NameFilter.
// Subsets are cheap values: they hold a Registry reference and a filter,
// copy nothing, and never mutate the catalog. Each Run or Export builds
// its own iterator and runtime, so distinct calls — including concurrent
// ones over a completed Registry — are independent.
type Subset struct {
	reg    *Registry
	filter NameFilter
}

// Filter returns the subset's name filter.
func (s Subset) Filter() NameFilter {
	return s.filter
}

// Iterator returns a fresh cursor over the subset against the current
// catalog snapshot.
func (s Subset) Iterator() *Iterator {
	groups, _ := s.reg.snapshot()
	return &Iterator{groups: groups, filter: s.filter}
}

// Run executes the selected cases and returns aggregate Stats. A nil
// observer discards progress.
//
// If a collection failure is recorded on the Registry — by any module, not
// just the selected ones — Run fails immediately with that *CollectError
// and issues zero observer callbacks. A case declaring the process
// corrupted aborts the run with a *CorruptError carrying the partial
// stats.
func (s Subset) Run(obs Observer) (Stats, error) {
	groups, collectErr := s.reg.snapshot()
	if collectErr != nil {
		return Stats{}, collectErr
	}
	if obs == nil {
		obs = nopObserver{}
	}
	e := &engine{obs: obs, filter: s.filter}
	return e.run(&Iterator{groups: groups, filter: s.filter})
}

// Export announces the selected cases to x without executing them. Each
// body runs only far enough to report its display name through StartCase.
// Name-filtered cases are silently excluded. A nil exporter discards the
// announcements. Like Run, Export fails immediately if a collection
// failure is recorded.
func (s Subset) Export(x Exporter) error {
	groups, collectErr := s.reg.snapshot()
	if collectErr != nil {
		return collectErr
	}
	if x == nil {
		x = nopExporter{}
	}
	return exportAll(&Iterator{groups: groups, filter: s.filter}, s.filter, x)
}
