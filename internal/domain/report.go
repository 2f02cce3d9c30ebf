package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Figure is one labelled value of the final report.
type Figure struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Report labels, in output order.
const (
	LabelTotalIncome     = "total income (総所得額)"
	LabelSalaryIncome    = "salary income (給与所得控除)"
	LabelBasicAllowance  = "basic allowance (基礎控除)"
	LabelSocialInsurance = "social insurance (社会保険料控除)"
	LabelTaxableIncome   = "taxable income (課税所得)"
	LabelIncomeTax       = "income tax (所得税)"
	LabelResidentTax     = "resident tax (住民税)"
)

// TaxReport is the complete result of one run. It is only produced when every stage
// succeeded.
type TaxReport struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Income      IncomeSummary  `json:"income"`
	Periods     []PeriodDetail `json:"periods"`

	// AdditionalSocialInsurance is the payment from tax.yml added on top of payroll
	// contributions; it is already included in SocialInsurance.
	AdditionalSocialInsurance decimal.Decimal `json:"additional_social_insurance"`

	TotalIncome     decimal.Decimal `json:"total_income"`
	SalaryIncome    decimal.Decimal `json:"salary_income"`
	BasicAllowance  decimal.Decimal `json:"basic_allowance"`
	SocialInsurance decimal.Decimal `json:"social_insurance"`
	TaxableIncome   decimal.Decimal `json:"taxable_income"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	ResidentTax     decimal.Decimal `json:"resident_tax"`
}

// Figures returns the seven reported values in their fixed order.
func (r *TaxReport) Figures() []Figure {
	return []Figure{
		{Key: "total_income", Label: LabelTotalIncome, Value: r.TotalIncome},
		{Key: "salary_income", Label: LabelSalaryIncome, Value: r.SalaryIncome},
		{Key: "basic_allowance", Label: LabelBasicAllowance, Value: r.BasicAllowance},
		{Key: "social_insurance", Label: LabelSocialInsurance, Value: r.SocialInsurance},
		{Key: "taxable_income", Label: LabelTaxableIncome, Value: r.TaxableIncome},
		{Key: "income_tax", Label: LabelIncomeTax, Value: r.IncomeTax},
		{Key: "resident_tax", Label: LabelResidentTax, Value: r.ResidentTax},
	}
}

// TotalTax is income tax plus resident tax.
func (r *TaxReport) TotalTax() decimal.Decimal {
	return r.IncomeTax.Add(r.ResidentTax)
}
