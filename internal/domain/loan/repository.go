package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// ListByCustomerID returns every loan of the customer, newest approval first.
	ListByCustomerID(ctx context.Context, customerID uint64) ([]Loan, error)
	// ListActiveByCustomerID returns loans with remaining EMIs
	// (emis_paid_on_time < tenure).
	ListActiveByCustomerID(ctx context.Context, customerID uint64) ([]Loan, error)
}
