package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatYen formats an amount as whole yen with thousands separators.
// Fractions from income estimation are rounded half away from zero.
func FormatYen(amount decimal.Decimal) string {
	return "¥" + groupThousands(amount.Round(0).StringFixed(0))
}

// FormatYenASCII is FormatYen with a JPY prefix, for fonts without the yen sign.
func FormatYenASCII(amount decimal.Decimal) string {
	return "JPY " + groupThousands(amount.Round(0).StringFixed(0))
}

// FormatOptionalYen formats a recorded amount, or "not recorded" for nil.
func FormatOptionalYen(amount *decimal.Decimal) string {
	if amount == nil {
		return "not recorded"
	}
	return FormatYen(*amount)
}

// FormatPercentage formats a ratio (0.05) as a percentage (5.00%).
func FormatPercentage(ratio decimal.Decimal) string {
	return ratio.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// EnglishLabel drops the parenthesised Japanese term from a report label.
func EnglishLabel(label string) string {
	if i := strings.Index(label, " ("); i > 0 {
		return label[:i]
	}
	return label
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// estimationNotes explains how the annual income was derived.
func estimationNotes(report *domain.TaxReport) []string {
	s := report.Income
	notes := []string{
		fmt.Sprintf("Income: %s recorded over %d of %d months", FormatYen(s.RecordedIncome), s.KnownMonths, domain.MonthsPerYear),
		fmt.Sprintf("Bonus: %s recorded over %d of %d payments", FormatYen(s.RecordedBonus), s.KnownBonuses, domain.BonusesPerYear),
	}
	if s.MissingMonths > 0 {
		notes = append(notes, fmt.Sprintf("Annual income estimated as recorded × %d / %d = %s",
			domain.MonthsPerYear, domain.MonthsPerYear-s.MissingMonths, FormatYen(s.EstimatedIncome)))
	}
	if s.MissingBonuses > 0 {
		notes = append(notes, fmt.Sprintf("Annual bonus estimated as recorded × %d / %d = %s",
			domain.BonusesPerYear, domain.BonusesPerYear-s.MissingBonuses, FormatYen(s.EstimatedBonus)))
	}
	if !report.AdditionalSocialInsurance.IsZero() {
		notes = append(notes, "Additional social insurance payment: "+FormatYen(report.AdditionalSocialInsurance))
	}
	return notes
}
