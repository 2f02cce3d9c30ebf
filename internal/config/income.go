package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/jptax/internal/domain"
	"gopkg.in/yaml.v3"
)

// IncomeLoader handles parsing of income.yml record files
type IncomeLoader struct{}

// NewIncomeLoader creates a new income record loader
func NewIncomeLoader() *IncomeLoader {
	return &IncomeLoader{}
}

// LoadFromFile loads and validates the monthly income records
func (il *IncomeLoader) LoadFromFile(filename string) (domain.IncomeRecords, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return il.parse(filename, data)
}

// Parse decodes income records from raw YAML.
func (il *IncomeLoader) Parse(data []byte) (domain.IncomeRecords, error) {
	return il.parse(DefaultIncomeFile, data)
}

func (il *IncomeLoader) parse(name string, data []byte) (domain.IncomeRecords, error) {
	if err := validateIncomeSchema(name, data); err != nil {
		return nil, err
	}

	var records domain.IncomeRecords
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := il.ValidateIncomeRecords(records); err != nil {
		return nil, fmt.Errorf("income records validation failed: %w", err)
	}

	return records, nil
}

// ValidateIncomeRecords checks record counts and amounts. A missing income is valid;
// it is what the estimation step fills in.
func (il *IncomeLoader) ValidateIncomeRecords(records domain.IncomeRecords) error {
	if len(records) == 0 {
		return fmt.Errorf("at least one monthly record is required")
	}
	if len(records) > domain.MonthsPerYear {
		return fmt.Errorf("%d monthly records found, at most %d allowed", len(records), domain.MonthsPerYear)
	}
	if n := records.BonusCount(); n > domain.BonusesPerYear {
		return fmt.Errorf("%d bonus records found, at most %d allowed", n, domain.BonusesPerYear)
	}

	for _, period := range records.Periods() {
		rec := records[period]
		m := rec.MonthIncome
		if m.Income != nil && m.Income.IsNegative() {
			return fmt.Errorf("%s: income cannot be negative", period)
		}
		if m.HealthInsurance.IsNegative() || m.EmployeesPension.IsNegative() || m.EmployeeInsurance.IsNegative() {
			return fmt.Errorf("%s: social insurance contributions cannot be negative", period)
		}
		if rec.Bonus != nil && rec.Bonus.Income != nil && rec.Bonus.Income.IsNegative() {
			return fmt.Errorf("%s: bonus income cannot be negative", period)
		}
	}
	return nil
}
