package customer

import (
	"context"
	"errors"
	"math"
	"strings"

	domain "credit-approval/internal/domain/customer"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

type RegisterInput struct {
	FirstName     string
	LastName      string
	Age           int
	MonthlyIncome float64
	PhoneNumber   string
}

type CustomerDTO struct {
	CustomerID    uint64  `json:"customer_id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
	ApprovedLimit float64 `json:"approved_limit"`
	PhoneNumber   string  `json:"phone_number"`
}

// ApprovedLimitFor derives the credit limit fixed at registration:
// 36x monthly income, rounded to the nearest 100,000.
func ApprovedLimitFor(monthlyIncome float64) float64 {
	return math.Round(36*monthlyIncome/100000) * 100000
}

// Register persists a new customer with the derived approved limit. The
// limit is immutable afterwards; issuing loans never recomputes it.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*CustomerDTO, error) {
	if in.MonthlyIncome <= 0 {
		return nil, errors.New("monthly income must be greater than 0")
	}

	c := &domain.Customer{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Age:           in.Age,
		PhoneNumber:   in.PhoneNumber,
		MonthlyIncome: in.MonthlyIncome,
		ApprovedLimit: ApprovedLimitFor(in.MonthlyIncome),
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// Get looks up a registered customer.
func (u *Usecase) Get(ctx context.Context, id uint64) (*CustomerDTO, error) {
	c, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func toDTO(c *domain.Customer) *CustomerDTO {
	return &CustomerDTO{
		CustomerID:    c.ID,
		Name:          strings.TrimSpace(c.FirstName + " " + c.LastName),
		Age:           c.Age,
		MonthlyIncome: c.MonthlyIncome,
		ApprovedLimit: c.ApprovedLimit,
		PhoneNumber:   c.PhoneNumber,
	}
}
