package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// DefaultIncomeFile is the income record file name looked up when no path is given.
	DefaultIncomeFile = "income.yml"
	// DefaultTaxFile is the tax rule file name looked up when no path is given.
	DefaultTaxFile = "tax.yml"
	// DefaultConfigDir is the conventional directory holding both files.
	DefaultConfigDir = "yml"
)

//go:embed samples/income.yml
var sampleIncomeYAML []byte

//go:embed samples/tax.yml
var sampleTaxYAML []byte

// SampleIncome returns the bundled example income.yml.
func SampleIncome() []byte { return append([]byte(nil), sampleIncomeYAML...) }

// SampleTax returns the bundled example tax.yml.
func SampleTax() []byte { return append([]byte(nil), sampleTaxYAML...) }

// WriteSamples writes the example income.yml and tax.yml into dir. Existing files
// are left untouched unless overwrite is set. It returns the paths written.
func WriteSamples(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{DefaultIncomeFile, sampleIncomeYAML},
		{DefaultTaxFile, sampleTaxYAML},
	}

	if !overwrite {
		for _, f := range files {
			path := filepath.Join(dir, f.name)
			if _, err := os.Stat(path); err == nil {
				return nil, fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to check %s: %w", path, err)
			}
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// ResolvePath returns explicit when set. Otherwise it returns the first existing
// candidate among yml/<name> and <name>, falling back to <name>.
func ResolvePath(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range []string{filepath.Join(DefaultConfigDir, name), name} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return name
}
