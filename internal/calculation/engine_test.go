package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaxEngine(t *testing.T) {
	engine := NewTaxEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestTaxEngine_SetLogger(t *testing.T) {
	engine := NewTaxEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestTaxEngine_Run_EndToEnd(t *testing.T) {
	fixed := time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC)
	prevNow, prevID := nowFunc, runIDFunc
	SetNowFunc(func() time.Time { return fixed })
	SetRunIDFunc(func() string { return "run-1" })
	t.Cleanup(func() {
		SetNowFunc(prevNow)
		SetRunIDFunc(prevID)
	})

	engine := NewTaxEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	report, err := engine.Run(fullYear(300000, 10000, 20000, 5000), sampleTaxConfig())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.True(t, dec(3600000).Equal(report.TotalIncome), "total income %s", report.TotalIncome)
	assert.True(t, dec(2440000).Equal(report.SalaryIncome), "salary income %s", report.SalaryIncome)
	assert.True(t, dec(480000).Equal(report.BasicAllowance), "basic allowance %s", report.BasicAllowance)
	assert.True(t, dec(420000).Equal(report.SocialInsurance), "social insurance %s", report.SocialInsurance)
	assert.True(t, dec(1540000).Equal(report.TaxableIncome), "taxable income %s", report.TaxableIncome)
	// 1,540,000 falls in the 5% bracket with no deduction.
	assert.True(t, dec(77000).Equal(report.IncomeTax), "income tax %s", report.IncomeTax)
	assert.True(t, dec(159000).Equal(report.ResidentTax), "resident tax %s", report.ResidentTax)
	assert.True(t, dec(236000).Equal(report.TotalTax()))

	require.Len(t, report.Periods, 12)
	assert.Equal(t, "2024-01", report.Periods[0].Period)
	assert.True(t, dec(35000).Equal(report.Periods[0].SocialInsurance))

	assert.Equal(t, "run-1", report.RunID)
	assert.Equal(t, fixed, report.GeneratedAt)
	assert.NotEmpty(t, logger.messages, "Should log pipeline stages")
}

func TestTaxEngine_Run_AdditionalSocialInsurance(t *testing.T) {
	cfg := sampleTaxConfig()
	cfg.AdditionalPayment = &domain.AdditionalPayment{SocialInsurance: decPtr(100000)}

	report, err := NewTaxEngine().Run(fullYear(300000, 10000, 20000, 5000), cfg)
	require.NoError(t, err)

	assert.True(t, dec(520000).Equal(report.SocialInsurance), "got %s", report.SocialInsurance)
	assert.True(t, dec(100000).Equal(report.AdditionalSocialInsurance))
	assert.True(t, dec(420000).Equal(report.Income.SocialInsurance), "payroll contributions stay separate")
	assert.True(t, dec(1440000).Equal(report.TaxableIncome), "got %s", report.TaxableIncome)
	assert.True(t, dec(72000).Equal(report.IncomeTax), "got %s", report.IncomeTax)
}

func TestTaxEngine_Run_Figures(t *testing.T) {
	report, err := NewTaxEngine().Run(fullYear(300000, 10000, 20000, 5000), sampleTaxConfig())
	require.NoError(t, err)

	figures := report.Figures()
	require.Len(t, figures, 7)
	labels := make([]string, 0, len(figures))
	for _, f := range figures {
		labels = append(labels, f.Label)
	}
	assert.Equal(t, []string{
		domain.LabelTotalIncome,
		domain.LabelSalaryIncome,
		domain.LabelBasicAllowance,
		domain.LabelSocialInsurance,
		domain.LabelTaxableIncome,
		domain.LabelIncomeTax,
		domain.LabelResidentTax,
	}, labels)
	assert.True(t, report.IncomeTax.Equal(figures[5].Value))
}

func TestTaxEngine_Run_Errors(t *testing.T) {
	missingAll := domain.IncomeRecords{}
	for i := 1; i <= 12; i++ {
		missingAll[period(i)] = month(nil, 0, 0, 0)
	}

	aboveLine := sampleTaxConfig()
	aboveLine.IncomeLineForYearEndAdjustment = dec(3000000)

	noAllowance := sampleTaxConfig()
	noAllowance.RulesForBasicAllowance = domain.RuleSet{
		{Conditions: domain.NewBounds(0, 1000000), Deduct: dec(480000)},
	}

	highTaxFloor := sampleTaxConfig()
	highTaxFloor.RulesForIncomeTax = domain.RuleSet{
		{Conditions: domain.NewBounds(2000000, 3300000), TaxRatio: dec(0), Deduct: dec(0)},
	}

	tests := []struct {
		name     string
		records  domain.IncomeRecords
		cfg      *domain.TaxConfig
		sentinel error
		contains string
	}{
		{"all months missing", missingAll, sampleTaxConfig(), domain.ErrMissingData, "income aggregation failed"},
		{"income above year-end line", fullYear(300000, 0, 0, 0), aboveLine, domain.ErrUnsupportedIncome, "salary income deduction failed"},
		{"no basic allowance bracket", fullYear(300000, 0, 0, 0), noAllowance, domain.ErrRuleSetExhausted, "basic allowance"},
		{"taxable income below lowest bracket", fullYear(300000, 10000, 20000, 5000), highTaxFloor, domain.ErrRuleSetExhausted, "income tax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := NewTaxEngine().Run(tt.records, tt.cfg)
			require.Error(t, err)
			assert.Nil(t, report, "no partial report on failure")
			assert.True(t, errors.Is(err, tt.sentinel), "unexpected error %v", err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestTaxEngine_Run_InvalidInput(t *testing.T) {
	engine := NewTaxEngine()

	_, err := engine.Run(fullYear(300000, 0, 0, 0), nil)
	assert.Error(t, err)

	_, err = engine.Run(domain.IncomeRecords{}, sampleTaxConfig())
	assert.Error(t, err)
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...any) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...any) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...any) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...any) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
