package emi

import "math"

// Monthly returns the fixed equated monthly installment for a loan of the
// given principal at an annual percentage rate over tenure months, using the
// standard amortization formula:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate. A zero rate degenerates to straight division.
// The result is rounded to 2 decimal places (half away from zero, i.e.
// conventional currency rounding). Callers must ensure tenureMonths >= 1.
func Monthly(principal, annualRate float64, tenureMonths int) float64 {
	r := annualRate / 100 / 12
	n := float64(tenureMonths)

	if r == 0 {
		return Round2(principal / n)
	}

	compound := math.Pow(1+r, n)
	return Round2(principal * r * compound / (compound - 1))
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
