package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainCustomer "credit-approval/internal/domain/customer"
	domainLoan "credit-approval/internal/domain/loan"
	"credit-approval/internal/domain/uow"
	"credit-approval/internal/usecase/eligibility"
	"credit-approval/pkg/id"

	"gorm.io/gorm"
)

// MsgApproved and friends are the messages surfaced to API clients.
const (
	MsgApproved         = "Loan approved successfully"
	MsgCustomerNotFound = "Customer not found"
	MsgScoreRejection   = "Loan not approved based on credit assessment"
)

// Checker runs the eligibility decision; satisfied by eligibility.Usecase.
type Checker interface {
	Check(ctx context.Context, in eligibility.CheckInput) (*eligibility.Result, error)
}

// Sentinels for the in-transaction re-check; they select the rejection
// message, they never escape Create.
var (
	errLimitExceeded = errors.New("sum of loans exceeds approved limit")
	errBurdenTooHigh = errors.New("emi burden exceeds half of income")
)

type Usecase struct {
	eligibility Checker
	customers   domainCustomer.Repository
	loans       domainLoan.Repository
	uow         uow.UnitOfWork
	now         func() time.Time
}

func NewUsecase(elig Checker, customers domainCustomer.Repository, loans domainLoan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{eligibility: elig, customers: customers, loans: loans, uow: tx, now: time.Now}
}

// WithClock overrides the time source used for approval dates.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type CreateInput struct {
	CustomerID   uint64
	LoanAmount   float64
	InterestRate float64
	Tenure       int
}

type CreateResult struct {
	LoanID             string  `json:"loan_id,omitempty"`
	CustomerID         uint64  `json:"customer_id"`
	LoanApproved       bool    `json:"loan_approved"`
	Message            string  `json:"message"`
	MonthlyInstallment float64 `json:"monthly_installment"`
}

// Create runs the eligibility check and, when approved, persists the loan at
// the corrected rate inside a customer-scoped transaction. Rejections and
// persistence failures both come back as an unapproved CreateResult; the
// returned error is reserved for infrastructure faults during the check.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	elig, err := u.eligibility.Check(ctx, eligibility.CheckInput(in))
	if errors.Is(err, domainCustomer.ErrNotFound) {
		return &CreateResult{CustomerID: in.CustomerID, Message: MsgCustomerNotFound}, nil
	}
	if err != nil {
		return nil, err
	}

	if !elig.Approval {
		msg := elig.Reason
		if msg == "" {
			msg = MsgScoreRejection
		}
		return &CreateResult{
			CustomerID:         in.CustomerID,
			Message:            msg,
			MonthlyInstallment: elig.MonthlyInstallment,
		}, nil
	}

	approvalDate := dateOnly(u.now().UTC())
	l := &domainLoan.Loan{
		LoanID:         id.NewID32(),
		CustomerID:     in.CustomerID,
		LoanAmount:     in.LoanAmount,
		Tenure:         in.Tenure,
		InterestRate:   elig.CorrectedInterestRate,
		MonthlyPayment: elig.MonthlyInstallment,
		EMIsPaidOnTime: 0,
		DateOfApproval: approvalDate,
		EndDate:        approvalDate.AddDate(0, in.Tenure, 0),
	}

	// The locked customer row is the serialization point: two concurrent
	// originations for the same customer are forced through one at a time.
	// A competitor may have committed between the eligibility check and
	// this transaction, so the limit and burden comparisons run again on
	// the tx-bound repos before the insert.
	err = u.uow.WithinCustomerTx(ctx, in.CustomerID, func(r uow.Repos, c *domainCustomer.Customer) error {
		all, err := r.Loans.ListByCustomerID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		var total, burden float64
		for i := range all {
			total += all[i].LoanAmount
			if all[i].Active() {
				burden += all[i].MonthlyPayment
			}
		}
		if total > c.ApprovedLimit {
			return errLimitExceeded
		}
		if c.MonthlyIncome <= 0 || burden+elig.MonthlyInstallment > 0.5*c.MonthlyIncome {
			return errBurdenTooHigh
		}
		return r.Loans.Create(ctx, l)
	})
	switch {
	case errors.Is(err, errLimitExceeded):
		return &CreateResult{
			CustomerID:         in.CustomerID,
			Message:            MsgScoreRejection,
			MonthlyInstallment: elig.MonthlyInstallment,
		}, nil
	case errors.Is(err, errBurdenTooHigh):
		return &CreateResult{
			CustomerID:         in.CustomerID,
			Message:            eligibility.ReasonEMITooHigh,
			MonthlyInstallment: elig.MonthlyInstallment,
		}, nil
	case err != nil:
		return &CreateResult{
			CustomerID:         in.CustomerID,
			Message:            fmt.Sprintf("error creating loan: %v", err),
			MonthlyInstallment: elig.MonthlyInstallment,
		}, nil
	}

	return &CreateResult{
		LoanID:             l.LoanID,
		CustomerID:         in.CustomerID,
		LoanApproved:       true,
		Message:            MsgApproved,
		MonthlyInstallment: elig.MonthlyInstallment,
	}, nil
}

// CustomerSummary is the customer block embedded in a loan detail view.
type CustomerSummary struct {
	ID          uint64 `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Age         int    `json:"age"`
}

type DetailDTO struct {
	LoanID             string          `json:"loan_id"`
	Customer           CustomerSummary `json:"customer"`
	LoanAmount         float64         `json:"loan_amount"`
	InterestRate       float64         `json:"interest_rate"`
	MonthlyInstallment float64         `json:"monthly_installment"`
	Tenure             int             `json:"tenure"`
}

// Get returns a loan together with its owning customer.
func (u *Usecase) Get(ctx context.Context, loanID string) (*DetailDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainLoan.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c, err := u.customers.GetByID(ctx, l.CustomerID)
	if err != nil {
		return nil, err
	}
	return &DetailDTO{
		LoanID: l.LoanID,
		Customer: CustomerSummary{
			ID:          c.ID,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			PhoneNumber: c.PhoneNumber,
			Age:         c.Age,
		},
		LoanAmount:         l.LoanAmount,
		InterestRate:       l.InterestRate,
		MonthlyInstallment: l.MonthlyPayment,
		Tenure:             l.Tenure,
	}, nil
}

type ListItemDTO struct {
	LoanID             string  `json:"loan_id"`
	LoanAmount         float64 `json:"loan_amount"`
	InterestRate       float64 `json:"interest_rate"`
	MonthlyInstallment float64 `json:"monthly_installment"`
	RepaymentsLeft     int     `json:"repayments_left"`
}

// ListByCustomer returns all loans of a known customer (empty slice when the
// customer has none).
func (u *Usecase) ListByCustomer(ctx context.Context, customerID uint64) ([]ListItemDTO, error) {
	if _, err := u.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainCustomer.ErrNotFound
		}
		return nil, err
	}
	loans, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]ListItemDTO, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		out = append(out, ListItemDTO{
			LoanID:             l.LoanID,
			LoanAmount:         l.LoanAmount,
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyPayment,
			RepaymentsLeft:     l.RepaymentsLeft(),
		})
	}
	return out, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
