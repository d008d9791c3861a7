package credit_test

import (
	"context"
	"testing"
	"time"

	"CreditCtrl/internal/domain/credit"
	"CreditCtrl/internal/domain/dictionary"
	appErrors "CreditCtrl/internal/errors"
	"CreditCtrl/internal/pkg"

	"github.com/shopspring/decimal"
)

type fakeCreditRepository struct {
	getByUserIDFn func(ctx context.Context, userID uint) ([]*credit.Credit, error)
}

func (f *fakeCreditRepository) GetByUserID(ctx context.Context, userID uint) ([]*credit.Credit, error) {
	if f.getByUserIDFn != nil {
		return f.getByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeCreditRepository) SumIssuedBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeCreditRepository) SumIssuedInMonth(ctx context.Context, period time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeCreditRepository) CountIssuedInMonth(ctx context.Context, period time.Time) (int64, error) {
	return 0, nil
}

type fakePaymentRepository struct {
	sumByCreditFn        func(ctx context.Context, creditID uint) (decimal.Decimal, error)
	sumByCreditAndTypeFn func(ctx context.Context, creditID, typeID uint) (decimal.Decimal, error)
}

func (f *fakePaymentRepository) SumByCredit(ctx context.Context, creditID uint) (decimal.Decimal, error) {
	if f.sumByCreditFn != nil {
		return f.sumByCreditFn(ctx, creditID)
	}
	return decimal.Zero, nil
}

func (f *fakePaymentRepository) SumByCreditAndType(ctx context.Context, creditID, typeID uint) (decimal.Decimal, error) {
	if f.sumByCreditAndTypeFn != nil {
		return f.sumByCreditAndTypeFn(ctx, creditID, typeID)
	}
	return decimal.Zero, nil
}

func (f *fakePaymentRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakePaymentRepository) SumPaidInMonth(ctx context.Context, period time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakePaymentRepository) CountPaidInMonth(ctx context.Context, period time.Time) (int64, error) {
	return 0, nil
}

type fakeDictionaryRepository struct {
	names map[string]uint
}

func (f *fakeDictionaryRepository) IDByName(ctx context.Context, name string) (uint, error) {
	if id, ok := f.names[name]; ok {
		return id, nil
	}
	return 0, appErrors.ErrCategoryNotFound
}

func (f *fakeDictionaryRepository) NameByID(ctx context.Context, id uint) (string, error) {
	for name, known := range f.names {
		if known == id {
			return name, nil
		}
	}
	return "", appErrors.ErrCategoryNotFound
}

func newDictionaryService() *dictionary.Service {
	return dictionary.NewService(&fakeDictionaryRepository{
		names: map[string]uint{
			dictionary.PaymentTypeBody:    1,
			dictionary.PaymentTypePercent: 2,
			dictionary.CategoryIssuance:   3,
			dictionary.CategoryCollection: 4,
		},
	})
}

func TestUserCreditsUnknownUser(t *testing.T) {
	t.Parallel()

	svc := credit.NewService(&fakeCreditRepository{}, &fakePaymentRepository{}, newDictionaryService())

	_, err := svc.UserCredits(context.Background(), 42)
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != appErrors.ErrUserNotFound.Code {
		t.Fatalf("expected code %s, got %s", appErrors.ErrUserNotFound.Code, appErr.Code)
	}
}

func TestUserCreditsRepaid(t *testing.T) {
	t.Parallel()

	returned := time.Date(2024, time.May, 11, 0, 0, 0, 0, time.UTC)
	repo := &fakeCreditRepository{
		getByUserIDFn: func(ctx context.Context, userID uint) ([]*credit.Credit, error) {
			return []*credit.Credit{{
				ID:               7,
				UserID:           userID,
				IssuanceDate:     time.Date(2023, time.November, 11, 0, 0, 0, 0, time.UTC),
				ReturnDate:       time.Date(2024, time.May, 11, 0, 0, 0, 0, time.UTC),
				ActualReturnDate: &returned,
				Body:             decimal.NewFromInt(10000),
				Percent:          decimal.NewFromInt(1200),
			}}, nil
		},
	}
	payments := &fakePaymentRepository{
		sumByCreditFn: func(ctx context.Context, creditID uint) (decimal.Decimal, error) {
			if creditID != 7 {
				t.Fatalf("expected credit 7, got %d", creditID)
			}
			return decimal.NewFromInt(11200), nil
		},
	}

	svc := credit.NewService(repo, payments, newDictionaryService())

	statuses, err := svc.UserCredits(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}

	st := statuses[0]
	if !st.IsRepaid {
		t.Fatalf("expected a repaid status: %+v", st)
	}
	if st.ActualReturnDate != "2024-05-11" {
		t.Fatalf("expected actual return date 2024-05-11, got %s", st.ActualReturnDate)
	}
	if st.LoanPaymentAmount == nil || !st.LoanPaymentAmount.Equal(decimal.NewFromInt(11200)) {
		t.Fatalf("expected loan payment amount 11200, got %v", st.LoanPaymentAmount)
	}
	if st.DaysOverdue != nil || st.ReturnDate != "" || st.Today != "" {
		t.Fatalf("outstanding-only fields must stay empty on a repaid status: %+v", st)
	}
}

func TestUserCreditsOutstanding(t *testing.T) {
	t.Parallel()

	today := pkg.DateOnly(time.Now().UTC())
	overdueReturn := today.AddDate(0, 0, -10)

	repo := &fakeCreditRepository{
		getByUserIDFn: func(ctx context.Context, userID uint) ([]*credit.Credit, error) {
			return []*credit.Credit{{
				ID:           9,
				UserID:       userID,
				IssuanceDate: overdueReturn.AddDate(0, -6, 0),
				ReturnDate:   overdueReturn,
				Body:         decimal.NewFromInt(5000),
				Percent:      decimal.NewFromInt(700),
			}}, nil
		},
	}
	payments := &fakePaymentRepository{
		sumByCreditAndTypeFn: func(ctx context.Context, creditID, typeID uint) (decimal.Decimal, error) {
			switch typeID {
			case 1:
				return decimal.NewFromInt(3000), nil
			case 2:
				return decimal.NewFromInt(400), nil
			}
			t.Fatalf("unexpected payment type %d", typeID)
			return decimal.Zero, nil
		},
	}

	svc := credit.NewService(repo, payments, newDictionaryService())

	statuses, err := svc.UserCredits(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := statuses[0]
	if st.IsRepaid {
		t.Fatalf("expected an outstanding status: %+v", st)
	}
	if st.DaysOverdue == nil || *st.DaysOverdue != 10 {
		t.Fatalf("expected 10 days overdue, got %v", st.DaysOverdue)
	}
	if st.Today != today.Format(time.DateOnly) {
		t.Fatalf("expected today %s, got %s", today.Format(time.DateOnly), st.Today)
	}
	if st.SumBodyPayments == nil || !st.SumBodyPayments.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected body payments 3000, got %v", st.SumBodyPayments)
	}
	if st.SumPercentPayments == nil || !st.SumPercentPayments.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected percent payments 400, got %v", st.SumPercentPayments)
	}
	if st.LoanPaymentAmount != nil || st.ActualReturnDate != "" {
		t.Fatalf("repaid-only fields must stay empty on an outstanding status: %+v", st)
	}
}

func TestDaysOverdue(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	if got := credit.DaysOverdue(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), today); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := credit.DaysOverdue(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), today); got != 0 {
		t.Fatalf("expected 0 for a future return date, got %d", got)
	}
	if got := credit.DaysOverdue(today, today); got != 0 {
		t.Fatalf("expected 0 for a same-day return date, got %d", got)
	}
}
