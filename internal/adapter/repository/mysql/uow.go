package mysql

import (
	"context"

	"credit-approval/internal/domain/customer"
	"credit-approval/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Customers: &CustomerRepository{db: tx},
			Loans:     &LoanRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinCustomerTx(ctx context.Context, customerID uint64, fn func(r uow.Repos, c *customer.Customer) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Customers: &CustomerRepository{db: tx},
			Loans:     &LoanRepository{db: tx},
		}
		// lock the customer row up-front so concurrent originations for the
		// same customer serialize on the limit check
		c, err := r.Customers.GetByIDForUpdate(ctx, customerID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
