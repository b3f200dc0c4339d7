package amortization

import (
	"errors"
	"math"
	"testing"
)

func TestCompute_Table(t *testing.T) {
	tests := []struct {
		name        string
		principal   float64
		rate        float64
		tenure      int
		wantMonthly float64
		wantTotal   float64
	}{
		{"worked example 12% over a year", 120000, 12, 12, 10661.85, 127942.26},
		{"small short loan", 5000, 10, 6, 857.81, 5146.84},
		{"high rate two years", 250000, 18, 24, 12481.03, 299544.61},
		{"zero rate splits evenly", 100000, 0, 10, 10000.00, 100000.00},
		{"zero rate with repeating fraction", 1000, 0, 3, 333.33, 1000.00},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.principal, tt.rate, tt.tenure)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if got.Monthly != tt.wantMonthly {
				t.Errorf("Monthly = %.2f, want %.2f", got.Monthly, tt.wantMonthly)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %.2f, want %.2f", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestCompute_TotalReconciles(t *testing.T) {
	// Monthly and Total are rounded independently; the drift is bounded by
	// half a cent per installment.
	cases := []struct {
		principal float64
		rate      float64
		tenure    int
	}{
		{120000, 12, 12},
		{5000, 24, 3},
		{999999.99, 7.5, 60},
		{1, 100, 1},
	}
	for _, c := range cases {
		got, err := Compute(c.principal, c.rate, c.tenure)
		if err != nil {
			t.Fatalf("Compute(%v): %v", c, err)
		}
		if got.Total < c.principal {
			t.Errorf("Compute(%v): total %.2f below principal", c, got.Total)
		}
		drift := math.Abs(got.Total - got.Monthly*float64(c.tenure))
		if limit := 0.005 * float64(c.tenure); drift > limit+1e-9 {
			t.Errorf("Compute(%v): total %.2f vs monthly*n %.2f, drift %.4f > %.4f",
				c, got.Total, got.Monthly*float64(c.tenure), drift, limit)
		}
	}
}

func TestCompute_ZeroRateExact(t *testing.T) {
	got, err := Compute(100000, 0, 10)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.Monthly != 10000 || got.Total != 100000 {
		t.Fatalf("zero rate: got %+v", got)
	}
}

func TestCompute_InvalidTerms(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		tenure    int
	}{
		{"zero principal", 0, 10, 12},
		{"negative principal", -100, 10, 12},
		{"zero tenure", 1000, 10, 0},
		{"negative tenure", 1000, 10, -3},
		{"negative rate", 1000, -1, 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Compute(c.principal, c.rate, c.tenure); !errors.Is(err, ErrInvalidTerms) {
				t.Fatalf("want ErrInvalidTerms, got %v", err)
			}
		})
	}
}
