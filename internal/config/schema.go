package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema/tax.schema.json
var taxSchemaJSON string

//go:embed schema/income.schema.json
var incomeSchemaJSON string

var (
	taxSchemaLoader    = gojsonschema.NewStringLoader(taxSchemaJSON)
	incomeSchemaLoader = gojsonschema.NewStringLoader(incomeSchemaJSON)
)

// SchemaError lists every schema violation found in a document.
type SchemaError struct {
	File   string
	Schema string
	Issues []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s does not match the %s schema:\n  - %s", e.File, e.Schema, strings.Join(e.Issues, "\n  - "))
}

// validateTaxSchema checks raw tax.yml content against the embedded JSON schema
// before it is decoded into domain types, so structural mistakes are reported with
// their document path rather than as a failed lookup at calculation time.
func validateTaxSchema(filename string, data []byte) error {
	return validateSchema(taxSchemaLoader, DefaultTaxFile, filename, data, false)
}

// validateIncomeSchema checks raw income.yml content. Every listed period must carry
// all three insurance contributions; unknown keys are rejected so a misspelt key is
// not read as zero. An empty document is left to record validation.
func validateIncomeSchema(filename string, data []byte) error {
	return validateSchema(incomeSchemaLoader, DefaultIncomeFile, filename, data, true)
}

func validateSchema(schema gojsonschema.JSONLoader, schemaName, filename string, data []byte, allowEmpty bool) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc == nil {
		if allowEmpty {
			return nil
		}
		return &SchemaError{File: filename, Schema: schemaName, Issues: []string{"document is empty"}}
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(stringKeys(doc)))
	if err != nil {
		return fmt.Errorf("schema validation of %s failed: %w", filename, err)
	}
	if result.Valid() {
		return nil
	}
	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return &SchemaError{File: filename, Schema: schemaName, Issues: issues}
}

// stringKeys converts mappings with non-string keys (e.g. period 1 instead of
// "2024-01") into string-keyed maps so the document can be encoded as JSON.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}
