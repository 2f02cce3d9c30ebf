package domain

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// MonthsPerYear is the number of monthly pay periods in one tax year.
	MonthsPerYear = 12
	// BonusesPerYear is the number of bonus payments in one tax year.
	BonusesPerYear = 2
)

// MonthlyIncome holds the salary and mandatory social insurance for one pay period.
// Income is nil when the month has not been recorded yet, which is distinct from a
// recorded zero.
type MonthlyIncome struct {
	Income            *decimal.Decimal `yaml:"income" json:"income"`
	HealthInsurance   decimal.Decimal  `yaml:"health_insurance" json:"health_insurance"`
	EmployeesPension  decimal.Decimal  `yaml:"employees_pension" json:"employees_pension"`
	EmployeeInsurance decimal.Decimal  `yaml:"employee_insurance" json:"employee_insurance"`
}

// SocialInsurance returns the sum of the three mandatory contributions for the period.
func (m MonthlyIncome) SocialInsurance() decimal.Decimal {
	return m.HealthInsurance.Add(m.EmployeesPension).Add(m.EmployeeInsurance)
}

// BonusRecord is a bonus paid in the same period as a monthly record.
type BonusRecord struct {
	Income *decimal.Decimal `yaml:"income" json:"income"`
}

// MonthlyIncomeRecord is one period entry of income.yml.
type MonthlyIncomeRecord struct {
	MonthIncome MonthlyIncome `yaml:"month_income" json:"month_income"`
	Bonus       *BonusRecord  `yaml:"bonus,omitempty" json:"bonus,omitempty"`
}

// HasBonus reports whether a bonus was paid in this period.
func (r MonthlyIncomeRecord) HasBonus() bool {
	return r.Bonus != nil
}

// IncomeRecords maps a period identifier (e.g. "2024-01") to its record.
type IncomeRecords map[string]MonthlyIncomeRecord

// Periods returns the period identifiers in sorted order. When every key is a plain
// integer the keys sort by value; otherwise they sort as text.
func (r IncomeRecords) Periods() []string {
	periods := make([]string, 0, len(r))
	numbers := make(map[string]int, len(r))
	for p := range r {
		periods = append(periods, p)
		if n, err := strconv.Atoi(p); err == nil {
			numbers[p] = n
		}
	}
	if len(numbers) == len(periods) {
		sort.Slice(periods, func(i, j int) bool { return numbers[periods[i]] < numbers[periods[j]] })
		return periods
	}
	sort.Strings(periods)
	return periods
}

// BonusCount returns how many periods carry a bonus record.
func (r IncomeRecords) BonusCount() int {
	n := 0
	for _, rec := range r {
		if rec.HasBonus() {
			n++
		}
	}
	return n
}

// PeriodDetail is the per-period view used by detailed reports.
type PeriodDetail struct {
	Period          string           `json:"period"`
	Income          *decimal.Decimal `json:"income"`
	HasBonus        bool             `json:"has_bonus"`
	Bonus           *decimal.Decimal `json:"bonus,omitempty"`
	SocialInsurance decimal.Decimal  `json:"social_insurance"`
}

// Details lists every period in sorted order. SocialInsurance is the amount charged
// for the period, so a bonus period shows the month's contributions twice.
func (r IncomeRecords) Details() []PeriodDetail {
	details := make([]PeriodDetail, 0, len(r))
	for _, p := range r.Periods() {
		rec := r[p]
		d := PeriodDetail{
			Period:          p,
			Income:          rec.MonthIncome.Income,
			HasBonus:        rec.HasBonus(),
			SocialInsurance: rec.MonthIncome.SocialInsurance(),
		}
		if rec.HasBonus() {
			d.Bonus = rec.Bonus.Income
			d.SocialInsurance = d.SocialInsurance.Add(rec.MonthIncome.SocialInsurance())
		}
		details = append(details, d)
	}
	return details
}

// IncomeSummary is the derived output of income aggregation. It is recomputed from
// the monthly records on every run and never persisted.
type IncomeSummary struct {
	RecordedIncome  decimal.Decimal `json:"recorded_income"`
	RecordedBonus   decimal.Decimal `json:"recorded_bonus"`
	KnownMonths     int             `json:"known_months"`
	MissingMonths   int             `json:"missing_months"`
	KnownBonuses    int             `json:"known_bonuses"`
	MissingBonuses  int             `json:"missing_bonuses"`
	EstimatedIncome decimal.Decimal `json:"estimated_income"`
	EstimatedBonus  decimal.Decimal `json:"estimated_bonus"`
	SocialInsurance decimal.Decimal `json:"social_insurance"`
}

// AnnualIncome is the estimated full-year income including bonuses.
func (s IncomeSummary) AnnualIncome() decimal.Decimal {
	return s.EstimatedIncome.Add(s.EstimatedBonus)
}

// IsEstimated reports whether any month or bonus had to be extrapolated.
func (s IncomeSummary) IsEstimated() bool {
	return s.MissingMonths > 0 || s.MissingBonuses > 0
}
