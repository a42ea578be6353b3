package tested

// EventKind tags the events an Iterator produces.
type EventKind int

const (
	// EventGroupStart announces entry into a non-excluded group.
	EventGroupStart EventKind = iota + 1
	// EventCaseReady presents a case whose body may be invoked.
	EventCaseReady
	// EventDone is the terminal state. It repeats forever.
	EventDone
)

// Event is one step of a traversal. Group is set for EventGroupStart and
// EventCaseReady; Case only for EventCaseReady.
type Event struct {
	Kind  EventKind
	Group *Group
	Case  *Case
}

// Iterator is a stateful cursor over a Registry snapshot, honoring a
// NameFilter. Traversal visits groups in registration order and cases in
// declaration order. Group- and ordinal-level exclusions are applied here,
// without invoking any body; name-level exclusion happens later, inside
// the Runtime, because a case's display name is unknown until StartCase
// fires.
//
// Iterators are single-use. Restart a traversal by constructing a fresh
// one from the Subset.
type Iterator struct {
	groups  []*Group
	filter  NameFilter
	gi      int  // current group index
	ci      int  // next case index within the current group
	entered bool // GroupStart already emitted for groups[gi]
}

// Next advances the cursor and returns the next event. After the traversal
// is exhausted it returns EventDone forever.
func (it *Iterator) Next() Event {
	for it.gi < len(it.groups) {
		g := it.groups[it.gi]

		if !it.entered {
			if it.filter.GroupExcluded(g.Name) {
				it.gi++
				continue
			}
			it.entered = true
			it.ci = 0
			return Event{Kind: EventGroupStart, Group: g}
		}

		for it.ci < len(g.cases) {
			c := &g.cases[it.ci]
			it.ci++
			if it.filter.CaseExcludedByNumber(c.Ordinal) {
				continue
			}
			return Event{Kind: EventCaseReady, Group: g, Case: c}
		}

		it.gi++
		it.entered = false

		// Group names need not be unique; group-scoped lookups take the
		// first match in registration order. Exhausting the matched
		// group ends the traversal.
		if it.filter.Mode != FilterNone {
			it.gi = len(it.groups)
		}
	}
	return Event{Kind: EventDone}
}
