package cleaner

import "testing"

func TestCleanChassis(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MD626AG19R2C12345", "MD626AG19R2C12345"},
		{"md626ag19r2c12345", "MD626AG19R2C12345"},
		{" MD62 6AG1 9R2C 12345 ", "MD626AG19R2C12345"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := CleanChassis(tt.in); got != tt.want {
			t.Errorf("CleanChassis(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildChassisIndex(t *testing.T) {
	rows := [][]string{
		{"MD626AG19R2C00001", "Ravi Kumar", "extra column"},
		{"md62 6ag1 9r2c 00002", "Sita Devi"},
		{"", "No Chassis"},
		{"MD626AG19R2C00003", ""},
		{"short row"},
	}

	index := BuildChassisIndex(rows)
	if len(index) != 2 {
		t.Fatalf("index has %d entries, want 2", len(index))
	}
	if index["MD626AG19R2C00001"] != "Ravi Kumar" {
		t.Errorf("entry 1 = %q", index["MD626AG19R2C00001"])
	}
	if index["MD626AG19R2C00002"] != "Sita Devi" {
		t.Errorf("cleaned-key entry = %q", index["MD626AG19R2C00002"])
	}
}

func TestFillVahanNames(t *testing.T) {
	// Chassis in column 6, name filled into column 12.
	mkRow := func(chassis string, width int) []string {
		row := make([]string, width)
		row[6] = chassis
		return row
	}

	rows := [][]string{
		mkRow("HEADER", 13), // row 0 is the export header, never touched
		mkRow("MD626AG19R2C00001", 13),
		mkRow("md62 6ag1 9r2c 00001", 13), // matches after cleaning
		mkRow("MD626AG19R2C99999", 13),    // not in the master
		mkRow("", 13),                     // no chassis, not counted
		mkRow("MD626AG19R2C00001", 7),     // short row gets padded
	}

	index := map[string]string{"MD626AG19R2C00001": "Ravi Kumar"}
	res := FillVahanNames(rows, index)

	if res.Total != 4 {
		t.Errorf("Total = %d, want 4", res.Total)
	}
	if res.Updated != 3 {
		t.Errorf("Updated = %d, want 3", res.Updated)
	}
	if res.Rows[0][12] != "" {
		t.Error("header row should not be modified")
	}
	if res.Rows[1][12] != "Ravi Kumar" || res.Rows[2][12] != "Ravi Kumar" {
		t.Error("matching rows should have the name filled")
	}
	if res.Rows[3][12] != "" {
		t.Error("unmatched row should stay empty")
	}
	if len(res.Rows[5]) != 13 || res.Rows[5][12] != "Ravi Kumar" {
		t.Errorf("short row not padded and filled: %v", res.Rows[5])
	}
}

func TestStripAccountCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"RAMESH KUMAR (10234)", "RAMESH KUMAR"},
		{"(99) PREFIX CODE", "PREFIX CODE"},
		{"NO CODE HERE", "NO CODE HERE"},
		{"KEEP (ABC) LETTERS", "KEEP (ABC) LETTERS"},
	}

	for _, tt := range tests {
		if got := StripAccountCode(tt.in); got != tt.want {
			t.Errorf("StripAccountCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
