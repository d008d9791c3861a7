package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a recorded repayment against a credit. TypeID references the
// dictionary ("тіло" for body, "відсотки" for interest). Payments are never
// updated or deleted.
type Payment struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Sum         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sum"`
	PaymentDate time.Time       `gorm:"type:date;index:idx_payments_payment_date;not null" json:"payment_date"`
	CreditID    uint            `gorm:"index:idx_payments_credit_id;not null" json:"credit_id"`
	TypeID      uint            `gorm:"not null" json:"type_id"`
}

func (Payment) TableName() string {
	return "payments"
}
