package numbering

import (
	"testing"
	"time"
)

func TestNextSimpleStartsAboveFloor(t *testing.T) {
	tests := []struct {
		name  string
		max   *int64
		floor int64
		want  int64
	}{
		{"empty gate pass series", nil, GatePassFloor, 1001},
		{"empty receipt series", nil, ReceiptFloor, 708},
		{"empty dp receipt series", nil, DPReceiptFloor, 713},
		{"existing max wins over floor", ptr(1500), GatePassFloor, 1501},
		{"max below floor still increments", ptr(5), ReceiptFloor, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextSimple(tt.max, tt.floor); got != tt.want {
				t.Errorf("NextSimple(%v, %d) = %d, want %d", tt.max, tt.floor, got, tt.want)
			}
		})
	}
}

func TestNextSimpleMonotonic(t *testing.T) {
	var max *int64
	for i := int64(1); i <= 50; i++ {
		got := NextSimple(max, GatePassFloor)
		want := GatePassFloor + i
		if got != want {
			t.Fatalf("call %d: got %d, want %d", i, got, want)
		}
		max = &got
	}
}

func TestFYPrefix(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-31", "24"}, // last day of FY2024-25
		{"2025-04-01", "25"}, // first day of FY2025-26
		{"2025-12-15", "25"},
		{"2026-01-10", "25"}, // Jan–Mar belong to the prior April's FY
		{"2024-02-29", "23"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			now, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatal(err)
			}
			if got := FYPrefix(now); got != tt.want {
				t.Errorf("FYPrefix(%s) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestNextFY(t *testing.T) {
	if got := NextFY(nil, "25"); got != 2500001 {
		t.Errorf("empty series: got %d, want 2500001", got)
	}
	if got := NextFY(ptr(2500007), "25"); got != 2500008 {
		t.Errorf("existing max: got %d, want 2500008", got)
	}
}

func TestHasFYPrefix(t *testing.T) {
	tests := []struct {
		n      int64
		prefix string
		want   bool
	}{
		{2500001, "25", true},
		{2400042, "25", false},
		{2400042, "24", true},
		{25999991, "25", true}, // series past NN99999 still belongs to its FY
		{25, "25", true},
		{7, "25", false},
	}

	for _, tt := range tests {
		if got := HasFYPrefix(tt.n, tt.prefix); got != tt.want {
			t.Errorf("HasFYPrefix(%d, %q) = %v, want %v", tt.n, tt.prefix, got, tt.want)
		}
	}
}

func ptr(n int64) *int64 { return &n }
