package attendance

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
		status  string
	}{
		{"missing in is absent", "-", "19:00", StatusAbsent},
		{"missing out is half day", "09:00", "-", StatusHalfDay},
		{"full day", "09:00", "19:00", StatusPresent},
		{"arrival at grace limit is present", "09:20", "19:00", StatusPresent},
		{"arrival past grace is half day", "09:21", "19:00", StatusHalfDay},
		{"departure at grace limit is present", "09:00", "18:50", StatusPresent},
		{"departure before grace is half day", "09:00", "18:49", StatusHalfDay},
		{"under four hours worked is half day", "15:00", "18:55", StatusHalfDay},
		{"unparseable punches are half day", "morning", "19:00", StatusHalfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := Classify(tt.in, tt.out)
			if status != tt.status {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.in, tt.out, status, tt.status)
			}
		})
	}
}

func TestClassifyLabels(t *testing.T) {
	if _, label := Classify("09:00", "19:00"); label != "Present" {
		t.Errorf("full day label = %q, want Present", label)
	}
	if _, label := Classify("-", "19:00"); label != "Absent" {
		t.Errorf("absent label = %q, want Absent", label)
	}
	if _, label := Classify("09:00", "-"); label != "Half Day" {
		t.Errorf("half day label = %q, want Half Day", label)
	}
}

func TestComputeTimeStatus(t *testing.T) {
	tests := []struct {
		name      string
		in, out   string
		wantLate  string
		wantEarly string
		wantNil   bool
	}{
		{"within grace both sides", "09:10", "18:55", "", "", true},
		{"late counted from nominal start", "09:21", "19:00", "0h 21m", "", false},
		{"very late", "10:05", "19:00", "1h 5m", "", false},
		{"early counted to nominal end", "09:00", "18:49", "", "0h 11m", false},
		{"late and early together", "09:30", "17:00", "0h 30m", "2h 0m", false},
		{"missing in gives nil", "-", "18:00", "", "", true},
		{"missing out hides earliness", "09:21", "-", "0h 21m", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := ComputeTimeStatus(tt.in, tt.out)
			if tt.wantNil {
				if ts != nil {
					t.Fatalf("ComputeTimeStatus(%q, %q) = %+v, want nil", tt.in, tt.out, ts)
				}
				return
			}
			if ts == nil {
				t.Fatalf("ComputeTimeStatus(%q, %q) = nil, want non-nil", tt.in, tt.out)
			}
			if ts.Late != tt.wantLate {
				t.Errorf("Late = %q, want %q", ts.Late, tt.wantLate)
			}
			if ts.Early != tt.wantEarly {
				t.Errorf("Early = %q, want %q", ts.Early, tt.wantEarly)
			}
		})
	}
}
