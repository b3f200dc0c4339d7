package amortization

import (
	"errors"
	"math"
)

// ErrInvalidTerms is returned for non-positive principal/tenure or a negative rate.
var ErrInvalidTerms = errors.New("invalid loan terms")

// Terms is the derived repayment schedule for a loan.
type Terms struct {
	Monthly float64 // fixed installment (EMI), 2 dp
	Total   float64 // total payable over the full tenure, 2 dp
}

// round2 rounds half away from zero at 2 decimal places.
// All amounts here are positive, so this behaves like round-half-up.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Compute derives the monthly installment and total payable using the
// standard annuity formula:
//
//	monthly = P*r*(1+r)^n / ((1+r)^n - 1)   with r = annualRatePct/100/12
//
// Monthly and total are rounded to 2 dp independently from the unrounded EMI,
// so Total may differ from Monthly*n by sub-cent drift.
// Zero rate degenerates to a straight split: monthly = P/n, total = P.
func Compute(principal, annualRatePct float64, tenureMonths int) (Terms, error) {
	if principal <= 0 || tenureMonths <= 0 || annualRatePct < 0 {
		return Terms{}, ErrInvalidTerms
	}

	n := float64(tenureMonths)
	r := annualRatePct / 100 / 12
	if r == 0 {
		return Terms{Monthly: round2(principal / n), Total: round2(principal)}, nil
	}

	growth := math.Pow(1+r, n)
	monthly := principal * r * growth / (growth - 1)
	return Terms{Monthly: round2(monthly), Total: round2(monthly * n)}, nil
}
