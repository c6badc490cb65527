package loanmock

import (
	"context"

	domain "credit-approval/internal/domain/loan"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies loan.Repository. List
// methods default to an empty history so scoring tests only set what they
// care about.
type Repo struct {
	CreateFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn            func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByCustomerIDFn       func(ctx context.Context, customerID uint64) ([]domain.Loan, error)
	ListActiveByCustomerIDFn func(ctx context.Context, customerID uint64) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID uint64) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, nil
}

func (m *Repo) ListActiveByCustomerID(ctx context.Context, customerID uint64) ([]domain.Loan, error) {
	if m.ListActiveByCustomerIDFn != nil {
		return m.ListActiveByCustomerIDFn(ctx, customerID)
	}
	// default: active subset of the full history
	all, err := m.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	var active []domain.Loan
	for i := range all {
		if all[i].Active() {
			active = append(active, all[i])
		}
	}
	return active, nil
}
