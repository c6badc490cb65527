package scoring

import (
	"context"
	"errors"
	"time"

	"credit-approval/internal/domain/customer"
	"credit-approval/internal/domain/loan"

	"gorm.io/gorm"
)

// Component weights. Kept as named constants because the policy bands in the
// eligibility usecase are sensitive to single-point score shifts.
const (
	weightOnTime      = 0.30
	weightLoanCount   = 0.20
	weightCurrentYear = 0.25
	weightVolume      = 0.25
)

type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
	now       func() time.Time
}

func NewUsecase(customers customer.Repository, loans loan.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans, now: time.Now}
}

// WithClock overrides the time source (only the year is consumed).
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Score computes a credit score in [0,100] from the customer's loan history:
//
//	i.   past EMIs paid on time (30%)
//	ii.  number of loans taken (20%)
//	iii. loan activity in the current year (25%)
//	iv.  approved-volume utilization (25%)
//
// An unknown customer scores 0 (no creditworthiness data), as does any
// customer whose summed loan amounts exceed the approved limit. A customer
// with no loans at all scores a neutral 50.
func (u *Usecase) Score(ctx context.Context, customerID uint64) (int, error) {
	cust, err := u.customers.GetByID(ctx, customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	loans, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return 0, err
	}

	// Summed over ALL loans, active or closed.
	var totalAmount float64
	for i := range loans {
		totalAmount += loans[i].LoanAmount
	}
	if totalAmount > cust.ApprovedLimit {
		return 0, nil
	}

	if len(loans) == 0 {
		return 50, nil
	}

	score := onTimeScore(loans)*weightOnTime +
		loanCountScore(len(loans))*weightLoanCount +
		currentYearScore(loans, u.now().Year())*weightCurrentYear +
		volumeScore(totalAmount, cust.ApprovedLimit)*weightVolume

	// Truncate toward zero, then clamp. Rounding here would shift the
	// policy bands by a point.
	s := int(score)
	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return s, nil
}

func onTimeScore(loans []loan.Loan) float64 {
	var totalEMIs, onTime int
	for i := range loans {
		totalEMIs += loans[i].Tenure
		onTime += loans[i].EMIsPaidOnTime
	}
	if totalEMIs == 0 {
		return 50
	}
	return float64(onTime) / float64(totalEMIs) * 100
}

func loanCountScore(total int) float64 {
	switch {
	case total == 0:
		return 0
	case total <= 2:
		return 30
	case total <= 5:
		return 60
	case total <= 10:
		return 80
	default:
		return 100
	}
}

func currentYearScore(loans []loan.Loan, year int) float64 {
	var n int
	for i := range loans {
		if loans[i].DateOfApproval.Year() == year {
			n++
		}
	}
	switch {
	case n == 0:
		return 20
	case n <= 2:
		return 70
	case n <= 4:
		return 90
	default:
		return 100
	}
}

func volumeScore(totalAmount, approvedLimit float64) float64 {
	if approvedLimit == 0 {
		return 0
	}
	ratio := totalAmount / approvedLimit
	switch {
	case ratio <= 0.3:
		return 100
	case ratio <= 0.5:
		return 80
	case ratio <= 0.7:
		return 60
	case ratio <= 0.9:
		return 40
	default:
		return 20
	}
}
