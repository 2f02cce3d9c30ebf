package calculation

import (
	"fmt"

	"github.com/rgehrsitz/jptax/internal/domain"
)

// TaxEngine runs the full pipeline: income aggregation, salary income and basic
// allowance deductions, then income tax and resident tax.
type TaxEngine struct {
	Logger Logger
}

// NewTaxEngine creates a new engine with a no-op logger.
func NewTaxEngine() *TaxEngine {
	return &TaxEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger; nil restores the no-op logger.
func (te *TaxEngine) SetLogger(l Logger) {
	if l == nil {
		te.Logger = NopLogger{}
		return
	}
	te.Logger = l
}

// Run computes the annual tax report. Either every figure is computed or an error
// is returned; there are no partial reports.
func (te *TaxEngine) Run(records domain.IncomeRecords, cfg *domain.TaxConfig) (*domain.TaxReport, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tax configuration is required")
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no income records provided")
	}

	summary, err := AggregateIncome(records)
	if err != nil {
		return nil, fmt.Errorf("income aggregation failed: %w", err)
	}
	te.Logger.Debugf("income: recorded=%s (%d known, %d missing) bonus=%s (%d known, %d missing)",
		summary.RecordedIncome, summary.KnownMonths, summary.MissingMonths,
		summary.RecordedBonus, summary.KnownBonuses, summary.MissingBonuses)
	if summary.IsEstimated() {
		te.Logger.Infof("annual income estimated from incomplete records: income=%s bonus=%s",
			summary.EstimatedIncome, summary.EstimatedBonus)
	}

	additional := cfg.AdditionalSocialInsurance()
	socialInsurance := summary.SocialInsurance.Add(additional)
	if !additional.IsZero() {
		te.Logger.Debugf("additional social insurance payment: %s", additional)
	}

	totalIncome := summary.AnnualIncome()
	salaryIncome, err := DeductSalaryIncome(totalIncome, cfg.IncomeLineForYearEndAdjustment, cfg.RulesForYearEndAdjustment)
	if err != nil {
		te.Logger.Errorf("salary income deduction failed for income %s", totalIncome)
		return nil, fmt.Errorf("salary income deduction failed: %w", err)
	}
	te.Logger.Debugf("salary income: %s", salaryIncome)

	basicAllowance, err := DeductBasicAllowance(totalIncome, cfg.RulesForBasicAllowance)
	if err != nil {
		te.Logger.Errorf("basic allowance lookup failed for income %s", totalIncome)
		return nil, fmt.Errorf("basic allowance deduction failed: %w", err)
	}
	te.Logger.Debugf("basic allowance: %s", basicAllowance)

	taxable := TaxableIncome(salaryIncome, basicAllowance, socialInsurance)
	te.Logger.Debugf("taxable income: %s - %s - %s = %s", salaryIncome, basicAllowance, socialInsurance, taxable)
	if taxable.IsNegative() {
		te.Logger.Warnf("taxable income is negative (%s)", taxable)
	}

	incomeTax, err := CalcIncomeTax(taxable, cfg.RulesForIncomeTax)
	if err != nil {
		te.Logger.Errorf("income tax lookup failed for taxable income %s", taxable)
		return nil, fmt.Errorf("income tax calculation failed: %w", err)
	}
	residentTax := CalcResidentTax(taxable, cfg.RulesForResidentTax)
	te.Logger.Debugf("income tax: %s, resident tax: %s", incomeTax, residentTax)

	return &domain.TaxReport{
		RunID:                     runIDFunc(),
		GeneratedAt:               nowFunc(),
		Income:                    *summary,
		Periods:                   records.Details(),
		AdditionalSocialInsurance: additional,
		TotalIncome:               totalIncome,
		SalaryIncome:              salaryIncome,
		BasicAllowance:            basicAllowance,
		SocialInsurance:           socialInsurance,
		TaxableIncome:             taxable,
		IncomeTax:                 incomeTax,
		ResidentTax:               residentTax,
	}, nil
}
