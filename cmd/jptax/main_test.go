package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/jptax/internal/config"
	"github.com/rgehrsitz/jptax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func sampleFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	_, err := config.WriteSamples(dir, false)
	require.NoError(t, err)
	return filepath.Join(dir, config.DefaultIncomeFile), filepath.Join(dir, config.DefaultTaxFile)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "jptax", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "calculate")
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"calculate", "validate", "init", "watch", "version"}
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "missing command %s", name)
	}
}

func TestCalculateCommand(t *testing.T) {
	income, tax := sampleFiles(t)

	out, _, err := execute(t, "calculate", "--income", income, "--tax", tax, "--format", "csv", "--output", "")
	require.NoError(t, err)
	assert.Contains(t, out, "income_tax,"+domain.LabelIncomeTax+",122815")
	assert.Contains(t, out, "resident_tax,"+domain.LabelResidentTax+",225315")
}

func TestCalculateCommand_OutputFile(t *testing.T) {
	income, tax := sampleFiles(t)
	path := filepath.Join(t.TempDir(), "report.pdf")

	out, errOut, err := execute(t, "calculate", "--income", income, "--tax", tax, "--format", "pdf", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Report written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestCalculateCommand_Errors(t *testing.T) {
	income, tax := sampleFiles(t)

	_, _, err := execute(t, "calculate", "--income", income, "--tax", tax, "--format", "xml", "--output", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")

	_, _, err = execute(t, "calculate", "--income", filepath.Join(t.TempDir(), "none.yml"), "--tax", tax, "--format", "console", "--output", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load income records")

	// Raise income above the year-end adjustment line.
	high := filepath.Join(t.TempDir(), "income.yml")
	require.NoError(t, os.WriteFile(high, []byte(`"2024-01": {month_income: {income: 9000000, health_insurance: 0, employees_pension: 0, employee_insurance: 0}}`), 0o644))
	_, _, err = execute(t, "calculate", "--income", high, "--tax", tax, "--format", "console", "--output", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedIncome)
}

func TestValidateCommand(t *testing.T) {
	income, tax := sampleFiles(t)

	out, _, err := execute(t, "validate", "--income", income, "--tax", tax)
	require.NoError(t, err)
	assert.Contains(t, out, "12 monthly records (2 not recorded), 2 bonus periods")
	assert.Contains(t, out, "7 income tax rules")

	broken := filepath.Join(t.TempDir(), "tax.yml")
	require.NoError(t, os.WriteFile(broken, []byte("income_line_for_year_end_adjustment: 1\n"), 0o644))
	_, _, err = execute(t, "validate", "--income", income, "--tax", broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "yml")

	out, _, err := execute(t, "init", dir, "--force=false")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, config.DefaultIncomeFile))
	assert.FileExists(t, filepath.Join(dir, config.DefaultTaxFile))

	_, _, err = execute(t, "init", dir, "--force=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "jptax dev")
}

func TestWatchCommand_RejectsBinaryFormat(t *testing.T) {
	income, tax := sampleFiles(t)

	_, _, err := execute(t, "watch", "--income", income, "--tax", tax, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported watch format")
}
