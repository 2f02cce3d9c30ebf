package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rgehrsitz/jptax/internal/domain"
)

// CSVSummarizer writes one row per reported figure, in report order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Key", "Label", "Value"}); err != nil {
		return nil, err
	}
	for _, f := range report.Figures() {
		if err := w.Write([]string{f.Key, f.Label, f.Value.String()}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
