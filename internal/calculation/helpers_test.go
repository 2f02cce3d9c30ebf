package calculation

import (
	"fmt"

	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// month builds a monthly record with the given income (nil = not recorded).
func month(income *decimal.Decimal, health, pension, employment int64) domain.MonthlyIncomeRecord {
	return domain.MonthlyIncomeRecord{
		MonthIncome: domain.MonthlyIncome{
			Income:            income,
			HealthInsurance:   dec(health),
			EmployeesPension:  dec(pension),
			EmployeeInsurance: dec(employment),
		},
	}
}

func withBonus(rec domain.MonthlyIncomeRecord, bonus *decimal.Decimal) domain.MonthlyIncomeRecord {
	rec.Bonus = &domain.BonusRecord{Income: bonus}
	return rec
}

func period(i int) string { return fmt.Sprintf("2024-%02d", i) }

// fullYear returns twelve recorded months of the same income and insurance.
func fullYear(income, health, pension, employment int64) domain.IncomeRecords {
	records := domain.IncomeRecords{}
	for i := 1; i <= 12; i++ {
		records[period(i)] = month(decPtr(income), health, pension, employment)
	}
	return records
}

// sampleTaxConfig is a small tax.yml equivalent covering the 3.6M salary case.
func sampleTaxConfig() *domain.TaxConfig {
	return &domain.TaxConfig{
		IncomeLineForYearEndAdjustment: dec(6600000),
		RulesForYearEndAdjustment: domain.RuleSet{
			{Conditions: domain.NewBounds(3596000, 3600000), Income: dec(2437200)},
			{Conditions: domain.NewBounds(3600000, 3604000), Income: dec(2440000)},
			{Conditions: domain.NewBounds(3604000, 3608000), Income: dec(2442800)},
		},
		RulesForBasicAllowance: domain.RuleSet{
			{Conditions: domain.NewBounds(0, 24000000), Deduct: dec(480000)},
			{Conditions: domain.NewBounds(24000000, 24500000), Deduct: dec(320000)},
			{Conditions: domain.NewOpenBounds(25000000), Deduct: dec(0)},
		},
		RulesForIncomeTax: domain.RuleSet{
			{Conditions: domain.NewBounds(0, 1950000), TaxRatio: decimal.NewFromFloat(0.05), Deduct: dec(0)},
			{Conditions: domain.NewBounds(1950000, 3300000), TaxRatio: decimal.NewFromFloat(0.10), Deduct: dec(97500)},
			{Conditions: domain.NewBounds(3300000, 6950000), TaxRatio: decimal.NewFromFloat(0.20), Deduct: dec(427500)},
		},
		RulesForResidentTax: domain.ResidentTaxFormula{
			TaxRatio: decimal.NewFromFloat(0.10),
			TaxPerCapita: domain.PerCapitaTax{
				PrefecturalTax: dec(1500),
				MunicipalTax:   dec(3500),
			},
		},
	}
}
