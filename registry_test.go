package tested

import (
	"sync"
	"testing"
)

func TestRegistry_QueriesConfigureFilters(t *testing.T) {
	reg := NewRegistry()

	if f := reg.GetAll().Filter(); f.Mode != FilterNone {
		t.Errorf("GetAll filter mode = %v", f.Mode)
	}
	if f := reg.ByGroup("math").Filter(); f.Mode != FilterGroup || f.Group != "math" {
		t.Errorf("ByGroup filter = %+v", f)
	}
	if f := reg.ByGroupAndCaseName("math", "Addition").Filter(); f.Mode != FilterGroupCase || f.Case != "Addition" {
		t.Errorf("ByGroupAndCaseName filter = %+v", f)
	}
	if f := reg.ByGroupAndCaseNumber("math", 2).Filter(); f.Mode != FilterGroupOrdinal || f.Ordinal != 2 {
		t.Errorf("ByGroupAndCaseNumber filter = %+v", f)
	}

	s, err := reg.ByAddress("math:#1")
	if err != nil {
		t.Fatal(err)
	}
	if f := s.Filter(); f.Mode != FilterGroupOrdinal || f.Ordinal != 1 {
		t.Errorf("ByAddress filter = %+v", f)
	}
	if _, err := reg.ByAddress(":broken"); err == nil {
		t.Error("expected error for malformed address")
	}
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	// Modules may register from multiple goroutines; the append must be
	// guarded.
	reg := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = RegisterGroup(reg, "g", "g_test.go", []Case{namedCase(0, "Only")})
		}()
	}
	wg.Wait()

	groups, _ := reg.snapshot()
	if len(groups) != 16 {
		t.Errorf("expected 16 groups, got %d", len(groups))
	}
}
