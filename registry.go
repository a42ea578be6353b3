package tested

import "sync"

// Registry is the process-wide, append-only catalog of test groups.
// Modules register themselves during start-up; once registration is
// complete the Registry is read-only and any number of runs may execute
// over it concurrently, each with its own iterator and stats.
//
// There is no ambient singleton. Construct one Registry per process and
// pass it explicitly to registration and query sites.
type Registry struct {
	mu         sync.Mutex
	groups     []*Group
	collectErr *CollectError // sticky; last write wins
}

// NewRegistry returns an empty catalog.
func NewRegistry() *Registry {
	return &Registry{}
}

// add appends a fully built group. Registration order is preserved.
func (r *Registry) add(g *Group) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = append(r.groups, g)
}

// RecordCollectionFailure marks the whole catalog unusable. Every later
// Run or Export fails immediately with err. Repeated failures overwrite
// the stored error.
func (r *Registry) RecordCollectionFailure(err *CollectError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collectErr = err
}

// snapshot returns the current group list and sticky collection error.
// The slice is safe to iterate without the lock: groups are immutable and
// registration only appends.
func (r *Registry) snapshot() ([]*Group, *CollectError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.groups[:len(r.groups):len(r.groups)], r.collectErr
}

// GetAll returns a Subset selecting every registered case.
func (r *Registry) GetAll() Subset {
	return Subset{reg: r}
}

// ByGroup returns a Subset selecting all cases of the first group with the
// given name.
func (r *Registry) ByGroup(name string) Subset {
	return Subset{reg: r, filter: NameFilter{Mode: FilterGroup, Group: name}}
}

// ByGroupAndCaseName returns a Subset selecting the case of group that
// announces caseName via StartCase. Name filtering is applied at execution
// time; excluded invocations are aborted at StartCase and reported nowhere.
func (r *Registry) ByGroupAndCaseName(group, caseName string) Subset {
	return Subset{reg: r, filter: NameFilter{Mode: FilterGroupCase, Group: group, Case: caseName}}
}

// ByGroupAndCaseNumber returns a Subset selecting the case of group with
// the given ordinal. Ordinal filtering is applied before invocation.
func (r *Registry) ByGroupAndCaseNumber(group string, ordinal int) Subset {
	return Subset{reg: r, filter: NameFilter{Mode: FilterGroupOrdinal, Group: group, Ordinal: ordinal}}
}

// ByAddress returns a Subset for a selector address. See ParseAddress for
// the grammar.
func (r *Registry) ByAddress(address string) (Subset, error) {
	f, err := ParseAddress(address)
	if err != nil {
		return Subset{}, err
	}
	return Subset{reg: r, filter: f}, nil
}
