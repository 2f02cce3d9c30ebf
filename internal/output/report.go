package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/jptax/internal/domain"
)

// ReportGenerator writes tax reports through the registered formatters.
type ReportGenerator struct {
	Stdout io.Writer
}

// NewReportGenerator creates a report generator writing to stdout
func NewReportGenerator(stdout io.Writer) *ReportGenerator {
	return &ReportGenerator{Stdout: stdout}
}

// Generate formats the report. With a path the result goes to that file, otherwise
// to Stdout. Binary formats require a path.
func (rg *ReportGenerator) Generate(report *domain.TaxReport, format, path string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s (available: %s)", format, strings.Join(AvailableFormatterNames(), ", "))
	}
	if path != "" {
		return WriteFormatted(f, report, path)
	}
	if IsBinary(f) {
		return fmt.Errorf("%s output requires --output", f.Name())
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = rg.Stdout.Write(data)
	return err
}

// GenerateReport is a convenience wrapper around ReportGenerator.Generate.
func GenerateReport(w io.Writer, report *domain.TaxReport, format, path string) error {
	return NewReportGenerator(w).Generate(report, format, path)
}
