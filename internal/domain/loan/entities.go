package loan

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("loan not found")
)

type Loan struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	LoanID         string    `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID     uint64    `gorm:"column:customer_id;not null;index:idx_loans_customer" json:"customer_id"`
	LoanAmount     float64   `gorm:"column:loan_amount;type:decimal(14,2);not null" json:"loan_amount"`
	Tenure         int       `gorm:"column:tenure;not null" json:"tenure"`
	InterestRate   float64   `gorm:"column:interest_rate;type:decimal(5,2);not null" json:"interest_rate"`
	MonthlyPayment float64   `gorm:"column:monthly_payment;type:decimal(12,2);not null" json:"monthly_payment"`
	EMIsPaidOnTime int       `gorm:"column:emis_paid_on_time;not null;default:0" json:"emis_paid_on_time"`
	DateOfApproval time.Time `gorm:"column:date_of_approval;type:date" json:"date_of_approval"`
	EndDate        time.Time `gorm:"column:end_date;type:date" json:"end_date"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Active reports whether the loan still has remaining EMIs.
func (l *Loan) Active() bool { return l.EMIsPaidOnTime < l.Tenure }

// RepaymentsLeft is the number of EMIs still due (never negative).
func (l *Loan) RepaymentsLeft() int {
	if left := l.Tenure - l.EMIsPaidOnTime; left > 0 {
		return left
	}
	return 0
}
