package refdata

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantOK   bool
		wantKind WindowKind
		wantDays int
	}{
		{
			name:     "California uses calendar days",
			code:     "CA",
			wantOK:   true,
			wantKind: WindowCalendarDays,
			wantDays: 10,
		},
		{
			name:     "New York uses business days",
			code:     "NY",
			wantOK:   true,
			wantKind: WindowBusinessDays,
			wantDays: 5,
		},
		{
			name:     "Florida has no fixed window",
			code:     "FL",
			wantOK:   true,
			wantKind: WindowNone,
			wantDays: 0,
		},
		{
			name:   "unknown code",
			code:   "ZZ",
			wantOK: false,
		},
		{
			name:   "empty code",
			code:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Lookup(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if p.Window.Kind != tt.wantKind {
				t.Errorf("Lookup(%q) window kind = %q, want %q", tt.code, p.Window.Kind, tt.wantKind)
			}
			if p.Window.Days != tt.wantDays {
				t.Errorf("Lookup(%q) window days = %d, want %d", tt.code, p.Window.Days, tt.wantDays)
			}
			if p.Statute == "" {
				t.Errorf("Lookup(%q) has empty statute", tt.code)
			}
			if p.DisplayTime == "" {
				t.Errorf("Lookup(%q) has empty display time", tt.code)
			}
		})
	}
}

func TestScheduleFor(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantSearch float64
		wantCopy   float64
		wantCert   float64
	}{
		{"California", "CA", 0, 0.10, 15},
		{"New York", "NY", 25, 0.25, 15},
		{"Texas", "TX", 0, 0.10, 5},
		{"unregistered jurisdiction falls back to default", "WY", 20, 0.15, 10},
		{"empty code falls back to default", "", 20, 0.15, 10},
		{"unknown code falls back to default", "ZZ", 20, 0.15, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScheduleFor(tt.code)
			if s.SearchRate != tt.wantSearch {
				t.Errorf("ScheduleFor(%q) search = %v, want %v", tt.code, s.SearchRate, tt.wantSearch)
			}
			if s.CopyFee != tt.wantCopy {
				t.Errorf("ScheduleFor(%q) copy = %v, want %v", tt.code, s.CopyFee, tt.wantCopy)
			}
			if s.CertificationFee != tt.wantCert {
				t.Errorf("ScheduleFor(%q) certification = %v, want %v", tt.code, s.CertificationFee, tt.wantCert)
			}
		})
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 51 {
		t.Fatalf("All() returned %d profiles, want 51 (50 states + DC)", len(all))
	}

	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Fatalf("All() not sorted: %q before %q", all[i-1].Code, all[i].Code)
		}
	}
}

func TestHasSchedule(t *testing.T) {
	for _, code := range []string{"CA", "NY", "TX", "FL", "IL"} {
		if !HasSchedule(code) {
			t.Errorf("HasSchedule(%q) = false, want true", code)
		}
	}
	if HasSchedule("WY") {
		t.Error("HasSchedule(WY) = true, want false")
	}
}
