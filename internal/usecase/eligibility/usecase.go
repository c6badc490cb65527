package eligibility

import (
	"context"
	"errors"

	"credit-approval/internal/domain/customer"
	"credit-approval/internal/domain/loan"
	"credit-approval/pkg/emi"

	"gorm.io/gorm"
)

// Scorer yields the 0-100 credit score for a customer; satisfied by
// scoring.Usecase.
type Scorer interface {
	Score(ctx context.Context, customerID uint64) (int, error)
}

// Minimum rates substituted when the requested rate is below the floor for
// the customer's score band.
const (
	rateFloorMid = 12.0 // 30 < score <= 50
	rateFloorLow = 16.0 // 10 < score <= 30
)

// ReasonEMITooHigh is the rejection reason for the affordability gate.
const ReasonEMITooHigh = "EMI exceeds 50% of monthly salary"

type Usecase struct {
	customers customer.Repository
	loans     loan.Repository
	scorer    Scorer
}

func NewUsecase(customers customer.Repository, loans loan.Repository, scorer Scorer) *Usecase {
	return &Usecase{customers: customers, loans: loans, scorer: scorer}
}

type CheckInput struct {
	CustomerID   uint64
	LoanAmount   float64
	InterestRate float64
	Tenure       int
}

type Result struct {
	CustomerID            uint64  `json:"customer_id"`
	Approval              bool    `json:"approval"`
	InterestRate          float64 `json:"interest_rate"`
	CorrectedInterestRate float64 `json:"corrected_interest_rate"`
	Tenure                int     `json:"tenure"`
	MonthlyInstallment    float64 `json:"monthly_installment"`
	CreditScore           int     `json:"credit_score"`
	Reason                string  `json:"reason,omitempty"`
}

// Check decides whether the requested loan can be approved and at what rate.
//
// The affordability gate runs before the score policy and short-circuits it:
// if the customer's active-loan EMIs plus the new installment exceed half the
// monthly income, the loan is rejected regardless of score. Otherwise the
// score policy applies:
//
//	score > 50        approve at the requested rate
//	30 < score <= 50  approve, floor the rate at 12%
//	10 < score <= 30  approve, floor the rate at 16%
//	score <= 10       reject
//
// An unknown customer is a lookup failure (customer.ErrNotFound), not a
// policy rejection.
func (u *Usecase) Check(ctx context.Context, in CheckInput) (*Result, error) {
	cust, err := u.customers.GetByID(ctx, in.CustomerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, customer.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	score, err := u.scorer.Score(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}

	installment := emi.Monthly(in.LoanAmount, in.InterestRate, in.Tenure)

	active, err := u.loans.ListActiveByCustomerID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	burden := installment
	for i := range active {
		burden += active[i].MonthlyPayment
	}

	res := &Result{
		CustomerID:            in.CustomerID,
		InterestRate:          in.InterestRate,
		CorrectedInterestRate: in.InterestRate,
		Tenure:                in.Tenure,
		MonthlyInstallment:    installment,
		CreditScore:           score,
	}

	// Non-positive income can never satisfy the 50% gate.
	if cust.MonthlyIncome <= 0 || burden > 0.5*cust.MonthlyIncome {
		res.Reason = ReasonEMITooHigh
		return res, nil
	}

	approved, corrected := approvalAndRate(score, in.InterestRate)
	res.Approval = approved
	res.CorrectedInterestRate = corrected
	return res, nil
}

// approvalAndRate applies the score policy table. Boundary scores 50, 30 and
// 10 fall into the lower band (the upper bound of each band is inclusive).
func approvalAndRate(score int, requested float64) (bool, float64) {
	switch {
	case score > 50:
		return true, requested
	case score > 30:
		if requested > rateFloorMid {
			return true, requested
		}
		return true, rateFloorMid
	case score > 10:
		if requested > rateFloorLow {
			return true, requested
		}
		return true, rateFloorLow
	default:
		return false, requested
	}
}
