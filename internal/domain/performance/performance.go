package performance

import "github.com/shopspring/decimal"

// PlanPerformance is one plan's standing as of the requested date.
type PlanPerformance struct {
	Period         string          `json:"period"`
	Category       string          `json:"category"`
	PlanSum        decimal.Decimal `json:"plan_sum"`
	ActualSum      decimal.Decimal `json:"actual_sum"`
	CompletionRate string          `json:"completion_rate"`
}

// MonthSummary is one month's row of the yearly report.
type MonthSummary struct {
	Month                       string          `json:"month"`
	IssuedLoansCount            int64           `json:"issued_loans_count"`
	PlanSumIssuedLoans          decimal.Decimal `json:"plan_sum_issued_loans"`
	SumIssuedLoans              decimal.Decimal `json:"sum_issued_loans"`
	PlanIssuedCompletionRate    string          `json:"plan_issued_completion_rate"`
	PaymentsCount               int64           `json:"payments_count"`
	PlanSumPayments             decimal.Decimal `json:"plan_sum_payments"`
	SumPayments                 decimal.Decimal `json:"sum_payments"`
	PlanPaymentsCompletionRate  string          `json:"plan_payments_completion_rate"`
	MonthlyIssuedPercentOfYear  string          `json:"monthly_issued_percent_of_year"`
	MonthlyPaymentPercentOfYear string          `json:"monthly_payment_percent_of_year"`
}
