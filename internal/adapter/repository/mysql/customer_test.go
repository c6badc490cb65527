package mysql

import (
	"context"
	"errors"
	"testing"

	customerDomain "credit-approval/internal/domain/customer"
	loanDomain "credit-approval/internal/domain/loan"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB migrates the domain models into an in-memory sqlite DB. The
// models carry no MySQL-only column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&customerDomain.Customer{}, &loanDomain.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeCustomer(income, limit float64) *customerDomain.Customer {
	return &customerDomain.Customer{
		FirstName:     "Asha",
		LastName:      "Rao",
		Age:           34,
		PhoneNumber:   "9876543210",
		MonthlyIncome: income,
		ApprovedLimit: limit,
	}
}

func TestCustomerCreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := makeCustomer(50_000, 1_800_000)
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FirstName != "Asha" || got.ApprovedLimit != 1_800_000 {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestCustomerGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}
