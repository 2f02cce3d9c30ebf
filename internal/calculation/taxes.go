package calculation

import (
	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
)

// CalcIncomeTax computes national income tax with the quick-calculation table:
//
//	tax = taxable income * tax_ratio - deduct
//
// Brackets are matched on the open interval lower < taxable < upper, so a value
// sitting exactly on a boundary matches neither neighbour unless another rule
// covers it.
func CalcIncomeTax(taxableIncome decimal.Decimal, rules domain.RuleSet) (decimal.Decimal, error) {
	rule, err := findRule(rules, taxableIncome, false, domain.LookupIncomeTax)
	if err != nil {
		return decimal.Zero, err
	}
	return taxableIncome.Mul(rule.TaxRatio).Sub(rule.Deduct), nil
}

// CalcResidentTax applies the flat resident tax formula (income share plus the
// prefectural and municipal per-capita levies).
func CalcResidentTax(taxableIncome decimal.Decimal, formula domain.ResidentTaxFormula) decimal.Decimal {
	return taxableIncome.Mul(formula.TaxRatio).
		Add(formula.TaxPerCapita.PrefecturalTax).
		Add(formula.TaxPerCapita.MunicipalTax)
}
