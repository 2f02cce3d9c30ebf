package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Bounds is the [lower, upper] condition pair of a bracket rule. Upper is nil for an
// open-ended top bracket. Whether each end is inclusive depends on the lookup that
// evaluates the rule, not on the rule itself.
type Bounds struct {
	Lower decimal.Decimal
	Upper *decimal.Decimal
}

// NewBounds builds a bounded pair.
func NewBounds(lower, upper int64) Bounds {
	u := decimal.NewFromInt(upper)
	return Bounds{Lower: decimal.NewFromInt(lower), Upper: &u}
}

// NewOpenBounds builds a pair with no upper limit.
func NewOpenBounds(lower int64) Bounds {
	return Bounds{Lower: decimal.NewFromInt(lower)}
}

// Unbounded reports whether the pair has no upper limit.
func (b Bounds) Unbounded() bool {
	return b.Upper == nil
}

// Contains reports whether v lies inside the interval. The lower end is inclusive
// only when lowerInclusive is set; the upper end is always exclusive.
func (b Bounds) Contains(v decimal.Decimal, lowerInclusive bool) bool {
	if lowerInclusive {
		if v.LessThan(b.Lower) {
			return false
		}
	} else if v.LessThanOrEqual(b.Lower) {
		return false
	}
	return b.Upper == nil || v.LessThan(*b.Upper)
}

func (b Bounds) String() string {
	if b.Upper == nil {
		return b.Lower.String() + "..∞"
	}
	return b.Lower.String() + ".." + b.Upper.String()
}

// UnmarshalYAML decodes the two-element sequence form used in tax.yml.
func (b *Bounds) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: conditions must be a [lower, upper] pair", value.Line)
	}
	var lower, upper *decimal.Decimal
	if err := value.Content[0].Decode(&lower); err != nil {
		return fmt.Errorf("line %d: invalid lower bound: %w", value.Line, err)
	}
	if lower == nil {
		return fmt.Errorf("line %d: lower bound is required", value.Line)
	}
	if err := value.Content[1].Decode(&upper); err != nil {
		return fmt.Errorf("line %d: invalid upper bound: %w", value.Line, err)
	}
	b.Lower = *lower
	b.Upper = upper
	return nil
}

// MarshalJSON emits the same [lower, upper] pair, with null for an open upper end.
func (b Bounds) MarshalJSON() ([]byte, error) {
	return json.Marshal([]*decimal.Decimal{&b.Lower, b.Upper})
}

// BracketRule is one entry of a rule set. Which result fields are meaningful depends
// on the rule set: year-end adjustment rules carry Income (the resulting salary
// income), basic allowance rules carry Deduct, income tax rules carry TaxRatio and
// Deduct.
type BracketRule struct {
	Conditions Bounds          `json:"conditions"`
	Income     decimal.Decimal `json:"income"`
	Deduct     decimal.Decimal `json:"deduct"`
	TaxRatio   decimal.Decimal `json:"tax_ratio"`
}

type bracketRuleYAML struct {
	Conditions *Bounds          `yaml:"conditions"`
	Conditons  *Bounds          `yaml:"conditons"` // misspelling found in older tax.yml files
	Income     *decimal.Decimal `yaml:"income"`
	Deduct     *decimal.Decimal `yaml:"deduct"`
	TaxRatio   *decimal.Decimal `yaml:"tax_ratio"`
}

// UnmarshalYAML accepts both "conditions" and the legacy "conditons" key.
func (r *BracketRule) UnmarshalYAML(value *yaml.Node) error {
	var raw bracketRuleYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	cond := raw.Conditions
	if cond == nil {
		cond = raw.Conditons
	}
	if cond == nil {
		return fmt.Errorf("line %d: rule has no conditions", value.Line)
	}
	*r = BracketRule{Conditions: *cond}
	if raw.Income != nil {
		r.Income = *raw.Income
	}
	if raw.Deduct != nil {
		r.Deduct = *raw.Deduct
	}
	if raw.TaxRatio != nil {
		r.TaxRatio = *raw.TaxRatio
	}
	return nil
}

// RuleSet is an ordered list of bracket rules. Lookups scan it in order and the
// first matching rule wins; overlapping or missing ranges are not rejected.
type RuleSet []BracketRule

// PerCapitaTax is the fixed per-person part of resident tax.
type PerCapitaTax struct {
	PrefecturalTax decimal.Decimal `json:"prefectural_tax"`
	MunicipalTax   decimal.Decimal `json:"municipal_tax"`
}

// UnmarshalYAML accepts both "prefectural_tax" and the legacy "prefectual_tax" key.
func (p *PerCapitaTax) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		PrefecturalTax *decimal.Decimal `yaml:"prefectural_tax"`
		PrefectualTax  *decimal.Decimal `yaml:"prefectual_tax"`
		MunicipalTax   decimal.Decimal  `yaml:"municipal_tax"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = PerCapitaTax{MunicipalTax: raw.MunicipalTax}
	switch {
	case raw.PrefecturalTax != nil:
		p.PrefecturalTax = *raw.PrefecturalTax
	case raw.PrefectualTax != nil:
		p.PrefecturalTax = *raw.PrefectualTax
	}
	return nil
}

// ResidentTaxFormula is the flat resident tax: income share plus per-capita levies.
type ResidentTaxFormula struct {
	TaxRatio     decimal.Decimal `yaml:"tax_ratio" json:"tax_ratio"`
	TaxPerCapita PerCapitaTax    `yaml:"tax_per_capita" json:"tax_per_capita"`
}

// AdditionalPayment lists payments made outside payroll that are still deductible.
type AdditionalPayment struct {
	SocialInsurance *decimal.Decimal `yaml:"social_insurance" json:"social_insurance,omitempty"`
}

// TaxConfig is the content of tax.yml.
type TaxConfig struct {
	IncomeLineForYearEndAdjustment decimal.Decimal    `yaml:"income_line_for_year_end_adjustment" json:"income_line_for_year_end_adjustment"`
	RulesForYearEndAdjustment      RuleSet            `yaml:"rules_for_year_end_adjustment" json:"rules_for_year_end_adjustment"`
	RulesForBasicAllowance         RuleSet            `yaml:"rules_for_basic_allowance" json:"rules_for_basic_allowance"`
	RulesForIncomeTax              RuleSet            `yaml:"rules_for_income_tax" json:"rules_for_income_tax"`
	RulesForResidentTax            ResidentTaxFormula `yaml:"rules_for_resident_tax" json:"rules_for_resident_tax"`
	AdditionalPayment              *AdditionalPayment `yaml:"additional_payment,omitempty" json:"additional_payment,omitempty"`
}

// AdditionalSocialInsurance returns the extra social insurance payment, or zero.
func (c *TaxConfig) AdditionalSocialInsurance() decimal.Decimal {
	if c.AdditionalPayment == nil || c.AdditionalPayment.SocialInsurance == nil {
		return decimal.Zero
	}
	return *c.AdditionalPayment.SocialInsurance
}
