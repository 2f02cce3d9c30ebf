package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// TaxLoader handles parsing of tax.yml rule files
type TaxLoader struct{}

// NewTaxLoader creates a new tax rule loader
func NewTaxLoader() *TaxLoader {
	return &TaxLoader{}
}

// LoadFromFile loads and validates a tax rule file
func (tl *TaxLoader) LoadFromFile(filename string) (*domain.TaxConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return tl.Parse(filename, data)
}

// Parse decodes tax rules from raw YAML. The name is only used in messages.
func (tl *TaxLoader) Parse(name string, data []byte) (*domain.TaxConfig, error) {
	if err := validateTaxSchema(name, data); err != nil {
		return nil, err
	}

	var cfg domain.TaxConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := tl.ValidateTaxConfig(&cfg); err != nil {
		return nil, fmt.Errorf("tax configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateTaxConfig checks the semantic constraints the schema cannot express.
// Rule ordering and overlap are deliberately left alone: lookups are first-match.
func (tl *TaxLoader) ValidateTaxConfig(cfg *domain.TaxConfig) error {
	if cfg == nil {
		return fmt.Errorf("tax configuration is required")
	}
	if !cfg.IncomeLineForYearEndAdjustment.IsPositive() {
		return fmt.Errorf("income_line_for_year_end_adjustment must be positive")
	}

	ruleSets := []struct {
		key   string
		rules domain.RuleSet
	}{
		{"rules_for_year_end_adjustment", cfg.RulesForYearEndAdjustment},
		{"rules_for_basic_allowance", cfg.RulesForBasicAllowance},
		{"rules_for_income_tax", cfg.RulesForIncomeTax},
	}
	for _, rs := range ruleSets {
		if len(rs.rules) == 0 {
			return fmt.Errorf("%s must contain at least one rule", rs.key)
		}
		for i, rule := range rs.rules {
			if err := validateRule(rule); err != nil {
				return fmt.Errorf("%s[%d]: %w", rs.key, i, err)
			}
		}
	}

	for i, rule := range cfg.RulesForIncomeTax {
		if !isRatio(rule.TaxRatio) {
			return fmt.Errorf("rules_for_income_tax[%d]: tax_ratio must be between 0 and 1", i)
		}
	}

	resident := cfg.RulesForResidentTax
	if !isRatio(resident.TaxRatio) {
		return fmt.Errorf("rules_for_resident_tax: tax_ratio must be between 0 and 1")
	}
	if resident.TaxPerCapita.PrefecturalTax.IsNegative() {
		return fmt.Errorf("rules_for_resident_tax: prefectural_tax cannot be negative")
	}
	if resident.TaxPerCapita.MunicipalTax.IsNegative() {
		return fmt.Errorf("rules_for_resident_tax: municipal_tax cannot be negative")
	}

	if extra := cfg.AdditionalSocialInsurance(); extra.IsNegative() {
		return fmt.Errorf("additional_payment.social_insurance cannot be negative")
	}

	return nil
}

func validateRule(rule domain.BracketRule) error {
	if rule.Conditions.Upper != nil && !rule.Conditions.Lower.LessThan(*rule.Conditions.Upper) {
		return fmt.Errorf("conditions %s: lower bound must be below upper bound", rule.Conditions)
	}
	if rule.Income.IsNegative() {
		return fmt.Errorf("income cannot be negative")
	}
	if rule.Deduct.IsNegative() {
		return fmt.Errorf("deduct cannot be negative")
	}
	return nil
}

func isRatio(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}
