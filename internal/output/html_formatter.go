package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/rgehrsitz/jptax/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"yen":    FormatYen,
	"optyen": FormatOptionalYen,
	"pct":    FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}
	var buf bytes.Buffer
	data := struct {
		*domain.TaxReport
		Figures     []domain.Figure
		Notes       []string
		Assumptions []string
	}{report, report.Figures(), estimationNotes(report), DefaultAssumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
