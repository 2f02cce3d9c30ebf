package calculation

import (
	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
)

// AggregateIncome sums the monthly records and extrapolates a full year when some
// months or bonus payments have not been recorded yet.
//
// Estimation assumes at most 12 monthly periods and 2 bonus periods per year:
//
//	estimated income = recorded income * 12 / (12 - missing months)
//	estimated bonus  = recorded bonus  *  2 / ( 2 - missing bonuses)
//
// A bonus period is charged social insurance at the month's rate, so the month's
// three contributions are counted a second time for every period carrying a bonus.
func AggregateIncome(records domain.IncomeRecords) (*domain.IncomeSummary, error) {
	s := &domain.IncomeSummary{}

	for _, period := range records.Periods() {
		rec := records[period]
		month := rec.MonthIncome

		if month.Income == nil {
			s.MissingMonths++
		} else {
			s.KnownMonths++
			s.RecordedIncome = s.RecordedIncome.Add(*month.Income)
		}
		s.SocialInsurance = s.SocialInsurance.Add(month.SocialInsurance())

		if !rec.HasBonus() {
			continue
		}
		if rec.Bonus.Income == nil {
			s.MissingBonuses++
		} else {
			s.KnownBonuses++
			s.RecordedBonus = s.RecordedBonus.Add(*rec.Bonus.Income)
		}
		s.SocialInsurance = s.SocialInsurance.Add(month.SocialInsurance())
	}

	var err error
	s.EstimatedIncome, err = extrapolate(s.RecordedIncome, domain.MonthsPerYear, s.MissingMonths, domain.CycleMonthly)
	if err != nil {
		return nil, err
	}
	s.EstimatedBonus, err = extrapolate(s.RecordedBonus, domain.BonusesPerYear, s.MissingBonuses, domain.CycleBonus)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// extrapolate scales a recorded total to a full cycle of periods.
func extrapolate(recorded decimal.Decimal, periods, missing int, cycle domain.Cycle) (decimal.Decimal, error) {
	known := periods - missing
	if known <= 0 {
		return decimal.Zero, &domain.MissingDataError{Cycle: cycle, Missing: missing, Periods: periods}
	}
	return recorded.Mul(decimal.NewFromInt(int64(periods))).Div(decimal.NewFromInt(int64(known))), nil
}
