package pkg_test

import (
	"testing"
	"time"

	"CreditCtrl/internal/pkg"
)

func TestMonthStart(t *testing.T) {
	t.Parallel()

	got := pkg.MonthStart(time.Date(2024, time.March, 20, 15, 4, 5, 0, time.UTC))
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNextMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		period time.Time
		want   time.Time
	}{
		{
			name:   "mid year",
			period: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "december rolls into next year",
			period: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			want:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := pkg.NextMonth(tt.period)
			if !got.Equal(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseReportDate(t *testing.T) {
	t.Parallel()

	got, err := pkg.ParseReportDate("20-03-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, err := pkg.ParseReportDate("2024-03-20"); err == nil {
		t.Fatalf("expected error for ISO-formatted input")
	}
	if _, err := pkg.ParseReportDate("32-01-2024"); err == nil {
		t.Fatalf("expected error for impossible day")
	}
}
