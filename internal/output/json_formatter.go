package output

import (
	"encoding/json"
	"fmt"

	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
)

// JSONFormatter serializes the report, with the ordered figures, as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}
	doc := struct {
		*domain.TaxReport
		Figures  []domain.Figure `json:"figures"`
		TotalTax decimal.Decimal `json:"total_tax"`
	}{report, report.Figures(), report.TotalTax()}
	return json.MarshalIndent(doc, "", "  ")
}
