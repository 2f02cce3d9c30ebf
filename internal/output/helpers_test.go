package output

import (
	"time"

	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// buildTestReport mirrors the 3.6M salary case with two missing months.
func buildTestReport() *domain.TaxReport {
	return &domain.TaxReport{
		RunID:       "test-run",
		GeneratedAt: time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC),
		Income: domain.IncomeSummary{
			RecordedIncome:  decimal.NewFromInt(3000000),
			RecordedBonus:   decimal.Zero,
			KnownMonths:     10,
			MissingMonths:   2,
			EstimatedIncome: decimal.NewFromInt(3600000),
			EstimatedBonus:  decimal.Zero,
			SocialInsurance: decimal.NewFromInt(420000),
		},
		Periods: []domain.PeriodDetail{
			{Period: "2024-01", Income: decPtr(300000), SocialInsurance: decimal.NewFromInt(35000)},
			{Period: "2024-02", Income: nil, HasBonus: true, Bonus: decPtr(500000), SocialInsurance: decimal.NewFromInt(70000)},
		},
		TotalIncome:     decimal.NewFromInt(3600000),
		SalaryIncome:    decimal.NewFromInt(2440000),
		BasicAllowance:  decimal.NewFromInt(480000),
		SocialInsurance: decimal.NewFromInt(420000),
		TaxableIncome:   decimal.NewFromInt(1540000),
		IncomeTax:       decimal.NewFromInt(77000),
		ResidentTax:     decimal.NewFromInt(159000),
	}
}
