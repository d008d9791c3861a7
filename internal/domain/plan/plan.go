package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan is a monthly target sum for one category. Period is always the first
// calendar day of a month; at most one plan may exist per (period, category),
// enforced by the import validator rather than a storage constraint. Plans are
// immutable once created.
type Plan struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Period     time.Time       `gorm:"type:date;index:idx_plans_period_category;not null" json:"period"`
	Sum        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sum"`
	CategoryID uint            `gorm:"index:idx_plans_period_category;not null" json:"category_id"`
}

func (Plan) TableName() string {
	return "plans"
}

// ImportRow is one raw spreadsheet row as decoded from the uploaded file.
// All cells arrive as strings; parsing and normalization happen in the
// validator so every malformed value maps to a row-indexed message.
type ImportRow struct {
	Period       string
	Sum          string
	CategoryName string
}
