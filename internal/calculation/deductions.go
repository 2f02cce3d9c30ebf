package calculation

import (
	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
)

// findRule scans rules in order and returns the first one whose interval contains
// value. Overlapping rules are resolved by position: the earliest listed rule wins.
func findRule(rules domain.RuleSet, value decimal.Decimal, lowerInclusive bool, lookup domain.Lookup) (domain.BracketRule, error) {
	for _, rule := range rules {
		if rule.Conditions.Contains(value, lowerInclusive) {
			return rule, nil
		}
	}
	return domain.BracketRule{}, &domain.RuleSetError{Lookup: lookup, Value: value}
}

// DeductSalaryIncome applies the year-end adjustment table and returns salary income
// (gross income after the employment income deduction). The table is only defined
// below threshold; brackets are matched as lower <= income < upper.
func DeductSalaryIncome(income, threshold decimal.Decimal, rules domain.RuleSet) (decimal.Decimal, error) {
	if !income.LessThan(threshold) {
		return decimal.Zero, &domain.PreconditionError{Income: income, Threshold: threshold}
	}
	rule, err := findRule(rules, income, true, domain.LookupYearEndAdjustment)
	if err != nil {
		return decimal.Zero, err
	}
	return rule.Income, nil
}

// DeductBasicAllowance returns the basic allowance for income. Brackets are matched
// as lower < income < upper, and a rule without an upper bound matches everything
// above its lower bound.
func DeductBasicAllowance(income decimal.Decimal, rules domain.RuleSet) (decimal.Decimal, error) {
	rule, err := findRule(rules, income, false, domain.LookupBasicAllowance)
	if err != nil {
		return decimal.Zero, err
	}
	return rule.Deduct, nil
}

// TaxableIncome composes the deduction results. It may be negative for very low
// incomes; the income tax rule set decides whether such values are covered.
func TaxableIncome(salaryIncome, basicAllowance, socialInsurance decimal.Decimal) decimal.Decimal {
	return salaryIncome.Sub(basicAllowance).Sub(socialInsurance)
}
