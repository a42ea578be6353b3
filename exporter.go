package tested

// ExportedCase is one announced case: its display name, ordinal and the
// body handle itself, so exporters can build alternative drivers.
type ExportedCase struct {
	Name    string
	Ordinal int
	Proc    CaseProc
}

// Exporter receives the identities of selected cases from Subset.Export.
type Exporter interface {
	OnGroup(name string)
	OnCase(c ExportedCase)
}

type nopExporter struct{}

func (nopExporter) OnGroup(string)      {}
func (nopExporter) OnCase(ExportedCase) {}

// exportRuntime announces a body's name and stops it before any real
// effect runs.
type exportRuntime struct {
	filter NameFilter
	name   string
	named  bool
}

func (rt *exportRuntime) StartCase(name string, description ...string) {
	if rt.named {
		return
	}
	if rt.filter.CaseExcludedByName(name) {
		panic(caseSignal{kind: signalFiltered})
	}
	rt.name = name
	rt.named = true
	panic(caseSignal{kind: signalReal})
}

// exportAll drives the iterator, announcing each selected case. A body
// that completes without calling StartCase is a collection-class failure,
// tagged with its ordinal.
func exportAll(it *Iterator, filter NameFilter, x Exporter) error {
	for {
		ev := it.Next()
		switch ev.Kind {
		case EventGroupStart:
			x.OnGroup(ev.Group.Name)
		case EventCaseReady:
			name, announced, err := announceCase(ev.Group, ev.Case, filter)
			if err != nil {
				return err
			}
			if announced {
				x.OnCase(ExportedCase{Name: name, Ordinal: ev.Case.Ordinal, Proc: ev.Case.Proc})
			}
		case EventDone:
			return nil
		}
	}
}

// announceCase invokes one body under the export Runtime. announced is
// false when the name filter excluded the case.
func announceCase(g *Group, c *Case, filter NameFilter) (name string, announced bool, err error) {
	rt := &exportRuntime{filter: filter}
	completed := false

	defer func() {
		if completed {
			return
		}
		if sig, ok := recover().(caseSignal); ok {
			switch {
			case sig.kind == signalReal && rt.named:
				name, announced = rt.name, true
				return
			case sig.kind == signalFiltered:
				return
			}
		}
		err = &CollectError{Group: g.Name, Source: g.Source, Ordinal: c.Ordinal,
			Message: "case did not call StartCase during export"}
	}()

	c.Proc(rt)
	completed = true
	return "", false, &CollectError{Group: g.Name, Source: g.Source, Ordinal: c.Ordinal,
		Message: "case did not call StartCase during export"}
}
