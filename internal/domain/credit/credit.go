package credit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit is a single issued loan. ActualReturnDate is set exactly once, at
// full repayment; a credit is outstanding while it is nil.
type Credit struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UserID           uint            `gorm:"index:idx_credits_user_id;not null" json:"user_id"`
	IssuanceDate     time.Time       `gorm:"type:date;index:idx_credits_issuance_date;not null" json:"issuance_date"`
	ReturnDate       time.Time       `gorm:"type:date;not null" json:"return_date"`
	ActualReturnDate *time.Time      `gorm:"type:date" json:"actual_return_date"`
	Body             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"body"`
	Percent          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"percent"`
}

func (Credit) TableName() string {
	return "credits"
}

func (c *Credit) IsRepaid() bool {
	return c.ActualReturnDate != nil
}

// Status is the per-credit payload of the user credits endpoint. Repaid and
// outstanding credits populate different subsets of the optional fields.
type Status struct {
	IssuanceDate string          `json:"issuance_date"`
	IsRepaid     bool            `json:"is_repaid"`
	Body         decimal.Decimal `json:"body"`
	Percent      decimal.Decimal `json:"percent"`

	// Repaid credits only.
	ActualReturnDate  string           `json:"actual_return_date,omitempty"`
	LoanPaymentAmount *decimal.Decimal `json:"loan_payment_amount,omitempty"`

	// Outstanding credits only.
	ReturnDate         string           `json:"return_date,omitempty"`
	DaysOverdue        *int             `json:"days_overdue,omitempty"`
	Today              string           `json:"today,omitempty"`
	SumBodyPayments    *decimal.Decimal `json:"sum_body_payments,omitempty"`
	SumPercentPayments *decimal.Decimal `json:"sum_percent_payments,omitempty"`
}
