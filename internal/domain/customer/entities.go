package customer

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("customer not found")
)

// Customer is the aggregate root: loans reference it and the approved limit
// is fixed at registration (36x monthly income to the nearest 100,000).
// The limit is never decremented as loans are issued; it is only compared
// against the sum of loan amounts.
type Customer struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"customer_id"`
	FirstName     string    `gorm:"column:first_name;size:64;not null" json:"first_name"`
	LastName      string    `gorm:"column:last_name;size:64" json:"last_name"`
	Age           int       `gorm:"column:age" json:"age"`
	PhoneNumber   string    `gorm:"column:phone_number;size:15" json:"phone_number"`
	MonthlyIncome float64   `gorm:"column:monthly_income;type:decimal(12,2);not null" json:"monthly_income"`
	ApprovedLimit float64   `gorm:"column:approved_limit;type:decimal(14,2);not null" json:"approved_limit"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Customer) TableName() string { return "customers" }
