package customer

import (
	"context"
	"errors"
	"testing"

	domain "credit-approval/internal/domain/customer"
	"credit-approval/internal/testutil/customermock"

	"gorm.io/gorm"
)

func TestApprovedLimitFor_RoundsToNearestLakh(t *testing.T) {
	cases := map[float64]float64{
		50_000:  1_800_000, // 36x lands exactly on a lakh
		52_000:  1_900_000, // 1,872,000 rounds up
		51_000:  1_800_000, // 1,836,000 rounds down
		1_000:   0,         // 36,000 rounds to zero
		100_000: 3_600_000,
	}
	for income, want := range cases {
		if got := ApprovedLimitFor(income); got != want {
			t.Fatalf("ApprovedLimitFor(%v) = %v, want %v", income, got, want)
		}
	}
}

func TestRegister_SetsDerivedLimit(t *testing.T) {
	repo := &customermock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Customer) error {
			c.ID = 101 // simulate auto-increment
			return nil
		},
	}
	u := NewUsecase(repo)

	dto, err := u.Register(context.Background(), RegisterInput{
		FirstName:     "Asha",
		LastName:      "Rao",
		Age:           30,
		MonthlyIncome: 52_000,
		PhoneNumber:   "9876543210",
	})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if dto.CustomerID != 101 {
		t.Fatalf("customer id = %d, want 101", dto.CustomerID)
	}
	if dto.ApprovedLimit != 1_900_000 {
		t.Fatalf("approved limit = %v, want 1900000", dto.ApprovedLimit)
	}
	if dto.Name != "Asha Rao" {
		t.Fatalf("name = %q", dto.Name)
	}
}

func TestRegister_RejectsNonPositiveIncome(t *testing.T) {
	u := NewUsecase(&customermock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Customer) error {
			t.Fatal("Create must not be called for invalid income")
			return nil
		},
	})
	if _, err := u.Register(context.Background(), RegisterInput{MonthlyIncome: 0}); err == nil {
		t.Fatal("want error")
	}
}

func TestRegister_SurfacesRepositoryError(t *testing.T) {
	u := NewUsecase(&customermock.Repo{
		CreateFn: func(ctx context.Context, c *domain.Customer) error {
			return errors.New("connection refused")
		},
	})
	if _, err := u.Register(context.Background(), RegisterInput{MonthlyIncome: 40_000}); err == nil {
		t.Fatal("want error")
	}
}

func TestGet_NotFound(t *testing.T) {
	u := NewUsecase(&customermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Customer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	_, err := u.Get(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_TrimsSingleName(t *testing.T) {
	u := NewUsecase(&customermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Customer, error) {
			return &domain.Customer{ID: 1, FirstName: "Cher", MonthlyIncome: 30_000}, nil
		},
	})
	dto, err := u.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err: %v", err)
	}
	if dto.Name != "Cher" {
		t.Fatalf("name = %q, want %q", dto.Name, "Cher")
	}
}
