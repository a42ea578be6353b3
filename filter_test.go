package tested

import "testing"

func TestNameFilter_ZeroValueExcludesNothing(t *testing.T) {
	var f NameFilter
	if f.GroupExcluded("math") {
		t.Error("zero filter excluded a group")
	}
	if f.CaseExcludedByNumber(3) {
		t.Error("zero filter excluded an ordinal")
	}
	if f.CaseExcludedByName("Addition") {
		t.Error("zero filter excluded a case name")
	}
}

func TestNameFilter_GroupMode(t *testing.T) {
	f := NameFilter{Mode: FilterGroup, Group: "math"}
	if f.GroupExcluded("math") {
		t.Error("selected group excluded")
	}
	if !f.GroupExcluded("std.vector") {
		t.Error("other group not excluded")
	}
	if f.CaseExcludedByNumber(0) || f.CaseExcludedByName("Addition") {
		t.Error("group-only mode must not exclude cases")
	}
}

func TestNameFilter_GroupCaseMode(t *testing.T) {
	f := NameFilter{Mode: FilterGroupCase, Group: "std.vector", Case: "emptiness"}
	if !f.GroupExcluded("math") {
		t.Error("other group not excluded")
	}
	if f.GroupExcluded("std.vector") {
		t.Error("selected group excluded")
	}
	if f.CaseExcludedByName("emptiness") {
		t.Error("selected case excluded")
	}
	if !f.CaseExcludedByName("growth") {
		t.Error("other case not excluded")
	}
	if f.CaseExcludedByNumber(7) {
		t.Error("name mode must not exclude by ordinal")
	}
}

func TestNameFilter_GroupOrdinalMode(t *testing.T) {
	f := NameFilter{Mode: FilterGroupOrdinal, Group: "math", Ordinal: 2}
	if f.CaseExcludedByNumber(2) {
		t.Error("selected ordinal excluded")
	}
	if !f.CaseExcludedByNumber(0) {
		t.Error("other ordinal not excluded")
	}
	if f.CaseExcludedByName("anything") {
		t.Error("ordinal mode must not exclude by name")
	}
}

func TestNameFilter_MatchingIsCaseSensitive(t *testing.T) {
	f := NameFilter{Mode: FilterGroup, Group: "math"}
	if !f.GroupExcluded("Math") {
		t.Error("matching must be case-sensitive")
	}
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		address string
		want    NameFilter
		wantErr bool
	}{
		{address: "math", want: NameFilter{Mode: FilterGroup, Group: "math"}},
		{address: "math:*", want: NameFilter{Mode: FilterGroup, Group: "math"}},
		{address: "std.vector:emptiness", want: NameFilter{Mode: FilterGroupCase, Group: "std.vector", Case: "emptiness"}},
		{address: "math:#2", want: NameFilter{Mode: FilterGroupOrdinal, Group: "math", Ordinal: 2}},
		{address: "", wantErr: true},
		{address: ":case", wantErr: true},
		{address: "math:", wantErr: true},
		{address: "math:#x", wantErr: true},
		{address: "math:#", wantErr: true},
		{address: "math:#+2", wantErr: true},
		{address: "math:#-1", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAddress(tt.address)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAddress(%q): expected error, got %+v", tt.address, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAddress(%q): %v", tt.address, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAddress(%q) = %+v, want %+v", tt.address, got, tt.want)
		}
	}
}
