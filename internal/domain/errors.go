package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the three fatal conditions of a tax run. The typed errors
// below unwrap to these so callers can test with errors.Is.
var (
	ErrMissingData       = errors.New("missing data exhaustion")
	ErrRuleSetExhausted  = errors.New("rule set exhausted")
	ErrUnsupportedIncome = errors.New("unsupported income range")
)

// Cycle names a reporting cycle used for estimation.
type Cycle string

const (
	CycleMonthly Cycle = "monthly income"
	CycleBonus   Cycle = "bonus"
)

// MissingDataError means every period of a cycle is missing (or more periods were
// supplied than the cycle holds), so the year cannot be extrapolated.
type MissingDataError struct {
	Cycle   Cycle
	Missing int
	Periods int
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("cannot estimate annual %s: %d of %d periods missing", e.Cycle, e.Missing, e.Periods)
}

func (e *MissingDataError) Unwrap() error { return ErrMissingData }

// Lookup identifies which bracket lookup failed.
type Lookup string

const (
	LookupYearEndAdjustment Lookup = "year-end adjustment"
	LookupBasicAllowance    Lookup = "basic allowance"
	LookupIncomeTax         Lookup = "income tax"
)

// RuleSetError is returned when no rule in a rule set matches the input value.
type RuleSetError struct {
	Lookup Lookup
	Value  decimal.Decimal
}

func (e *RuleSetError) Error() string {
	return fmt.Sprintf("out of rules for %s: no bracket matches %s, please add conditions", e.Lookup, e.Value.String())
}

func (e *RuleSetError) Unwrap() error { return ErrRuleSetExhausted }

// PreconditionError is returned when income is not below the year-end adjustment
// income line the rule set was written for.
type PreconditionError struct {
	Income    decimal.Decimal
	Threshold decimal.Decimal
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("income %s is outside the supported range (must be below %s), rule set must be extended",
		e.Income.String(), e.Threshold.String())
}

func (e *PreconditionError) Unwrap() error { return ErrUnsupportedIncome }
