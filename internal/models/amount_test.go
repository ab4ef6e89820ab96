package models

import (
	"encoding/json"
	"testing"
)

func TestLenientAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"plain number", `{"amount": 1500.50}`, 1500.50},
		{"numeric string", `{"amount": "2500"}`, 2500},
		{"numeric string with spaces", `{"amount": " 99.9 "}`, 99.9},
		{"empty string defaults to zero", `{"amount": ""}`, 0},
		{"null defaults to zero", `{"amount": null}`, 0},
		{"missing field defaults to zero", `{}`, 0},
		{"non-numeric string defaults to zero", `{"amount": "tbd"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Amount LenientAmount `json:"amount"`
			}
			if err := json.Unmarshal([]byte(tt.body), &payload); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.body, err)
			}
			if float64(payload.Amount) != tt.want {
				t.Errorf("amount = %v, want %v", float64(payload.Amount), tt.want)
			}
		})
	}
}
