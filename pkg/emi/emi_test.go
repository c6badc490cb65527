package emi

import (
	"math"
	"testing"
)

func TestMonthly_ZeroRate_IsStraightDivision(t *testing.T) {
	got := Monthly(120000, 0, 12)
	if got != 10000 {
		t.Fatalf("Monthly = %v, want 10000", got)
	}

	// Uneven division still lands on 2 decimals.
	got = Monthly(1000, 0, 3)
	if got != 333.33 {
		t.Fatalf("Monthly = %v, want 333.33", got)
	}
}

func TestMonthly_ReferenceScenario(t *testing.T) {
	// 100k principal, 10% annual, 12 months → 8791.59
	got := Monthly(100000, 10, 12)
	if got != 8791.59 {
		t.Fatalf("Monthly = %v, want 8791.59", got)
	}
}

func TestMonthly_MonotoneInRate(t *testing.T) {
	prev := Monthly(500000, 0, 24)
	for rate := 1.0; rate <= 36; rate++ {
		cur := Monthly(500000, rate, 24)
		if cur < prev {
			t.Fatalf("installment decreased: rate=%v cur=%v prev=%v", rate, cur, prev)
		}
		prev = cur
	}
}

func TestMonthly_MonotoneInTenure(t *testing.T) {
	prev := Monthly(500000, 12, 6)
	for n := 7; n <= 120; n++ {
		cur := Monthly(500000, 12, n)
		if cur > prev {
			t.Fatalf("installment increased: tenure=%d cur=%v prev=%v", n, cur, prev)
		}
		prev = cur
	}
}

func TestMonthly_TwoDecimalPlaces(t *testing.T) {
	for _, rate := range []float64{0, 5.5, 10, 17.75} {
		got := Monthly(98765.43, rate, 17)
		if math.Abs(got*100-math.Round(got*100)) > 1e-9 {
			t.Fatalf("Monthly(%v) = %v, not on 2 decimals", rate, got)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		1.006:   1.01,
		1.004:   1.0,
		-1.006:  -1.01,
		8791.588723: 8791.59,
		100.0:   100.0,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}
