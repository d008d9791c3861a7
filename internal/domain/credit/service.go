package credit

import (
	"context"
	"time"

	"CreditCtrl/internal/domain/dictionary"
	"CreditCtrl/internal/domain/payment"
	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/pkg"
)

// Service resolves the repayment status of a user's credits: repaid credits
// report their realized payment total, outstanding ones report overdue days
// and the body/interest payment breakdown.
type Service struct {
	Repository   Repository
	Payments     payment.Repository
	Dictionaries *dictionary.Service
}

func NewService(repo Repository, payments payment.Repository, dictionaries *dictionary.Service) *Service {
	return &Service{
		Repository:   repo,
		Payments:     payments,
		Dictionaries: dictionaries,
	}
}

func (s *Service) UserCredits(ctx context.Context, userID uint) ([]Status, error) {
	credits, err := s.Repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(credits) == 0 {
		return nil, appErrors.ErrUserNotFound
	}

	statuses := make([]Status, 0, len(credits))
	for _, c := range credits {
		if c.IsRepaid() {
			st, err := s.repaidStatus(ctx, c)
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, st)
			continue
		}

		st, err := s.outstandingStatus(ctx, c)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}

	return statuses, nil
}

func (s *Service) repaidStatus(ctx context.Context, c *Credit) (Status, error) {
	paid, err := s.Payments.SumByCredit(ctx, c.ID)
	if err != nil {
		return Status{}, err
	}

	return Status{
		IssuanceDate:      c.IssuanceDate.Format(time.DateOnly),
		IsRepaid:          true,
		ActualReturnDate:  c.ActualReturnDate.Format(time.DateOnly),
		Body:              c.Body,
		Percent:           c.Percent,
		LoanPaymentAmount: &paid,
	}, nil
}

func (s *Service) outstandingStatus(ctx context.Context, c *Credit) (Status, error) {
	bodyTypeID, err := s.Dictionaries.IDByName(ctx, dictionary.PaymentTypeBody)
	if err != nil {
		return Status{}, err
	}
	percentTypeID, err := s.Dictionaries.IDByName(ctx, dictionary.PaymentTypePercent)
	if err != nil {
		return Status{}, err
	}

	bodyPaid, err := s.Payments.SumByCreditAndType(ctx, c.ID, bodyTypeID)
	if err != nil {
		return Status{}, err
	}
	percentPaid, err := s.Payments.SumByCreditAndType(ctx, c.ID, percentTypeID)
	if err != nil {
		return Status{}, err
	}

	today := pkg.DateOnly(time.Now().UTC())
	overdue := DaysOverdue(c.ReturnDate, today)

	return Status{
		IssuanceDate:       c.IssuanceDate.Format(time.DateOnly),
		IsRepaid:           false,
		ReturnDate:         c.ReturnDate.Format(time.DateOnly),
		DaysOverdue:        &overdue,
		Today:              today.Format(time.DateOnly),
		Body:               c.Body,
		Percent:            c.Percent,
		SumBodyPayments:    &bodyPaid,
		SumPercentPayments: &percentPaid,
	}, nil
}

// DaysOverdue counts full days between the contractual return date and today.
// Not yet due credits report zero, never a negative value.
func DaysOverdue(returnDate, today time.Time) int {
	days := int(pkg.DateOnly(today).Sub(pkg.DateOnly(returnDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
