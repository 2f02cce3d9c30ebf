package integration

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/jptax/internal/calculation"
	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdata(name string) string {
	return filepath.Join("..", "testdata", name)
}

func yen(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

type expected struct {
	total, salary, allowance, insurance, taxable, incomeTax, residentTax int64
}

func assertFigures(t *testing.T, want expected, report *domain.TaxReport) {
	t.Helper()
	got := []decimal.Decimal{report.TotalIncome, report.SalaryIncome, report.BasicAllowance,
		report.SocialInsurance, report.TaxableIncome, report.IncomeTax, report.ResidentTax}
	exp := []int64{want.total, want.salary, want.allowance, want.insurance, want.taxable, want.incomeTax, want.residentTax}
	for i, f := range report.Figures() {
		assert.True(t, yen(exp[i]).Equal(got[i]), "%s: expected %d, got %s", f.Label, exp[i], got[i])
	}
}

// TestEndToEnd runs the engine on the fixture files.
func TestEndToEnd(t *testing.T) {
	tests := []struct {
		name   string
		income string
		tax    string
		want   expected
	}{
		{
			name:   "full year without bonus",
			income: "income_full.yml",
			tax:    "tax.yml",
			want:   expected{3600000, 2440000, 480000, 420000, 1540000, 77000, 159000},
		},
		{
			name:   "legacy keys with additional social insurance",
			income: "income_full.yml",
			tax:    "tax_legacy.yml",
			want:   expected{3600000, 2440000, 480000, 520000, 1440000, 72000, 149000},
		},
		{
			name:   "one bonus paid and one pending",
			income: "income_with_bonuses.yml",
			tax:    "tax.yml",
			// bonus 400,000 * 2 / 1; both bonus months carry insurance twice
			want: expected{4400000, 3080000, 480000, 490000, 2110000, 113500, 216000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := calculation.NewTaxEngine().RunFiles(testdata(tt.income), testdata(tt.tax))
			require.NoError(t, err)
			require.NotNil(t, report)
			assertFigures(t, tt.want, report)
		})
	}
}

func TestEndToEnd_MissingData(t *testing.T) {
	report, err := calculation.NewTaxEngine().RunFiles(testdata("income_bonus_unpaid.yml"), testdata("tax.yml"))
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domain.ErrMissingData))

	var missing *domain.MissingDataError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, domain.CycleBonus, missing.Cycle)
	assert.Equal(t, 2, missing.Missing)
}

func TestEndToEnd_Deterministic(t *testing.T) {
	engine := calculation.NewTaxEngine()
	first, err := engine.RunFiles(testdata("income_with_bonuses.yml"), testdata("tax.yml"))
	require.NoError(t, err)
	second, err := engine.RunFiles(testdata("income_with_bonuses.yml"), testdata("tax.yml"))
	require.NoError(t, err)

	for i, f := range first.Figures() {
		assert.True(t, f.Value.Equal(second.Figures()[i].Value), f.Label)
	}
	assert.NotEqual(t, first.RunID, second.RunID, "each run gets its own identifier")
}
