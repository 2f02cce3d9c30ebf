package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders the report as an A4 PDF. The core PDF fonts have no
// Japanese glyphs, so labels are printed in English and amounts in JPY.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// Binary reports that the output is not printable text.
func (p PDFFormatter) Binary() bool { return true }

func (p PDFFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("no report to format")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetTitle("Annual Tax Estimate", false)
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 12, "Annual Tax Estimate", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Run %s - %s", report.RunID, report.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdfHeading(pdf, "Result")
	labelW, valueW := pdfContentWidth*0.6, pdfContentWidth*0.4
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, f := range report.Figures() {
		pdf.CellFormat(labelW, 7, EnglishLabel(f.Label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 7, FormatYenASCII(f.Value), "B", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(labelW, 8, "total tax", "T", 0, "L", false, 0, "")
	pdf.CellFormat(valueW, 8, FormatYenASCII(report.TotalTax()), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdfHeading(pdf, "Monthly records")
	colW := pdfContentWidth / 4
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 240)
	for i, h := range []string{"Period", "Income", "Bonus", "Social insurance"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(colW, 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, p := range report.Periods {
		bonus := "-"
		if p.HasBonus {
			bonus = optionalYenASCII(p.Bonus)
		}
		pdf.CellFormat(colW, 6, p.Period, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW, 6, optionalYenASCII(p.Income), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW, 6, bonus, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW, 6, FormatYenASCII(p.SocialInsurance), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdfHeading(pdf, "Income estimation")
	pdf.SetFont("Arial", "", 10)
	s := report.Income
	pdf.MultiCell(pdfContentWidth, 5, fmt.Sprintf(
		"%d of %d months recorded (%s), annual income %s.\n%d of %d bonuses recorded (%s), annual bonus %s.",
		s.KnownMonths, domain.MonthsPerYear, FormatYenASCII(s.RecordedIncome), FormatYenASCII(s.EstimatedIncome),
		s.KnownBonuses, domain.BonusesPerYear, FormatYenASCII(s.RecordedBonus), FormatYenASCII(s.EstimatedBonus)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 9, title, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func optionalYenASCII(amount *decimal.Decimal) string {
	if amount == nil {
		return "not recorded"
	}
	return FormatYenASCII(*amount)
}
