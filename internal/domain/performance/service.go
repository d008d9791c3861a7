package performance

import (
	"context"
	"errors"
	"time"

	"CreditCtrl/internal/domain/credit"
	"CreditCtrl/internal/domain/dictionary"
	"CreditCtrl/internal/domain/payment"
	"CreditCtrl/internal/domain/plan"
	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/logger"
	"CreditCtrl/internal/pkg"

	"github.com/shopspring/decimal"
)

const monthLabelLayout = "01.2006"

var hundred = decimal.NewFromInt(100)

// Service compares planned targets against actual ledger activity. All of its
// operations are read-only computations over repository aggregates.
type Service struct {
	Plans        plan.Repository
	Credits      credit.Repository
	Payments     payment.Repository
	Dictionaries *dictionary.Service
}

func NewService(
	plans plan.Repository,
	credits credit.Repository,
	payments payment.Repository,
	dictionaries *dictionary.Service,
) *Service {
	return &Service{
		Plans:        plans,
		Credits:      credits,
		Payments:     payments,
		Dictionaries: dictionaries,
	}
}

// MonthPerformance evaluates every plan of the target date's month "as of"
// that date: actuals are aggregated over [month start, target], inclusive, so
// mid-month snapshots work. A month without plans is a distinct not-found
// outcome, not an empty list.
func (s *Service) MonthPerformance(ctx context.Context, target time.Time) ([]PlanPerformance, error) {
	target = pkg.DateOnly(target)
	period := pkg.MonthStart(target)

	plans, err := s.Plans.GetByMonth(ctx, period)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, appErrors.ErrNoPlansForMonth
	}

	results := make([]PlanPerformance, 0, len(plans))
	for _, p := range plans {
		name, err := s.Dictionaries.NameByID(ctx, p.CategoryID)
		if err != nil {
			if errors.Is(err, appErrors.ErrCategoryNotFound) {
				logger.Warn().Uint("plan_id", p.ID).Uint("category_id", p.CategoryID).
					Msg("plan references unknown category, omitted from month performance")
				continue
			}
			return nil, err
		}

		var actual decimal.Decimal
		switch name {
		case dictionary.CategoryIssuance:
			actual, err = s.Credits.SumIssuedBetween(ctx, p.Period, target)
		case dictionary.CategoryCollection:
			actual, err = s.Payments.SumPaidBetween(ctx, p.Period, target)
		default:
			logger.Warn().Uint("plan_id", p.ID).Str("category", name).
				Msg("plan category is neither issuance nor collection, omitted from month performance")
			continue
		}
		if err != nil {
			return nil, err
		}

		results = append(results, PlanPerformance{
			Period:         p.Period.Format(time.DateOnly),
			Category:       name,
			PlanSum:        p.Sum,
			ActualSum:      actual,
			CompletionRate: completionRate(actual, p.Sum),
		})
	}

	return results, nil
}

// YearPerformance builds the per-month report for a year. Annual totals must
// be known before per-month shares can be computed, hence the two passes over
// the grouped plans.
func (s *Service) YearPerformance(ctx context.Context, year int) ([]MonthSummary, error) {
	plans, err := s.Plans.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, appErrors.ErrNoPlansForYear
	}

	issuanceID, err := s.Dictionaries.IDByName(ctx, dictionary.CategoryIssuance)
	if err != nil {
		return nil, err
	}

	groups := groupByPeriod(plans)

	// Pass 1: annual actual totals, accumulated per plan.
	annualIssued := decimal.Zero
	annualPaid := decimal.Zero
	for _, p := range plans {
		if p.CategoryID == issuanceID {
			monthSum, err := s.Credits.SumIssuedInMonth(ctx, p.Period)
			if err != nil {
				return nil, err
			}
			annualIssued = annualIssued.Add(monthSum)
		} else {
			monthSum, err := s.Payments.SumPaidInMonth(ctx, p.Period)
			if err != nil {
				return nil, err
			}
			annualPaid = annualPaid.Add(monthSum)
		}
	}

	// Pass 2: per-month rows. Within a month, counts accumulate per plan while
	// the target and actual of a category take the last plan processed.
	summaries := make([]MonthSummary, 0, len(groups))
	for _, g := range groups {
		var issuedCount, paymentsCount int64
		planIssued := decimal.Zero
		planPaid := decimal.Zero
		sumIssued := decimal.Zero
		sumPaid := decimal.Zero

		for _, p := range g.plans {
			if p.CategoryID == issuanceID {
				count, err := s.Credits.CountIssuedInMonth(ctx, g.period)
				if err != nil {
					return nil, err
				}
				issuedCount += count
				planIssued = p.Sum
				if sumIssued, err = s.Credits.SumIssuedInMonth(ctx, g.period); err != nil {
					return nil, err
				}
			} else {
				count, err := s.Payments.CountPaidInMonth(ctx, g.period)
				if err != nil {
					return nil, err
				}
				paymentsCount += count
				planPaid = p.Sum
				if sumPaid, err = s.Payments.SumPaidInMonth(ctx, g.period); err != nil {
					return nil, err
				}
			}
		}

		summaries = append(summaries, MonthSummary{
			Month:                       g.period.Format(monthLabelLayout),
			IssuedLoansCount:            issuedCount,
			PlanSumIssuedLoans:          planIssued,
			SumIssuedLoans:              sumIssued,
			PlanIssuedCompletionRate:    completionRate(sumIssued, planIssued),
			PaymentsCount:               paymentsCount,
			PlanSumPayments:             planPaid,
			SumPayments:                 sumPaid,
			PlanPaymentsCompletionRate:  completionRate(sumPaid, planPaid),
			MonthlyIssuedPercentOfYear:  completionRate(sumIssued, annualIssued),
			MonthlyPaymentPercentOfYear: completionRate(sumPaid, annualPaid),
		})
	}

	return summaries, nil
}

type periodGroup struct {
	period time.Time
	plans  []*plan.Plan
}

// groupByPeriod groups plans by month, preserving the repository's period
// ordering for the groups and insertion order within each group.
func groupByPeriod(plans []*plan.Plan) []periodGroup {
	index := make(map[time.Time]int, len(plans))
	groups := make([]periodGroup, 0, len(plans))
	for _, p := range plans {
		i, ok := index[p.Period]
		if !ok {
			i = len(groups)
			index[p.Period] = i
			groups = append(groups, periodGroup{period: p.Period})
		}
		groups[i].plans = append(groups[i].plans, p)
	}
	return groups
}

// completionRate renders actual / target as a two-decimal percentage string.
// A zero target divides by one instead of failing.
func completionRate(actual, target decimal.Decimal) string {
	denom := target
	if denom.IsZero() {
		denom = decimal.NewFromInt(1)
	}
	return actual.Mul(hundred).Div(denom).RoundBank(2).StringFixed(2) + "%"
}
