package calculation

import (
	"fmt"

	"github.com/rgehrsitz/jptax/internal/config"
	"github.com/rgehrsitz/jptax/internal/domain"
)

// RunFiles loads income.yml and tax.yml from the given paths and runs the engine.
func (te *TaxEngine) RunFiles(incomePath, taxPath string) (*domain.TaxReport, error) {
	records, err := config.NewIncomeLoader().LoadFromFile(incomePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load income records: %w", err)
	}
	te.Logger.Debugf("loaded %d income records from %s", len(records), incomePath)

	cfg, err := config.NewTaxLoader().LoadFromFile(taxPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax rules: %w", err)
	}
	te.Logger.Debugf("loaded tax rules from %s", taxPath)

	return te.Run(records, cfg)
}
