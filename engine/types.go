/*
Package engine is the compensation normalization core.

PURPOSE:
  This package turns a heterogeneous set of locum tenens pay components
  (base hourly pay, overtime, on-call/beeper pay, callback pay, stipends,
  reimbursements, bonuses) into a consistent set of derived figures:
  weekly gross pay, total gross contract value, and a single comparable
  "true hourly rate".

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A currency amount backed by decimal.Decimal
  - TrueRate: A tagged hourly rate that can be explicitly undefined
  - ComponentTotals: Per-component contract totals, one field per pay type

DESIGN PRINCIPLES:
  1. Purity: Compute is a function from input to result. No I/O, no clock,
     no randomness. Identical input yields bit-identical output.
  2. Precision: All arithmetic uses decimal.Decimal. No float64 touches a
     calculation path.
  3. Errors as data: validation failures and the undefined true rate are
     values, never panics and never NaN/Inf.

USAGE:
  result, errs := engine.Compute(engine.RawInput{
      engine.FieldBaseHourlyRate:      "85",
      engine.FieldHoursPerWeek:        "40",
      engine.FieldContractLengthWeeks: "13",
  })
  if errs != nil {
      // field-scoped validation errors, render inline
  }

SEE ALSO:
  - input.go: Field registry and validation
  - schedule.go: Working-time resolution
  - components.go: Per-component calculation rules
  - engine.go: Aggregation and the true-rate calculation
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency amount with exact decimal arithmetic
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Value: d}
}

// MoneyZero returns a zero amount.
func MoneyZero() Money {
	return Money{Value: decimal.Zero}
}

func (m Money) Add(b Money) Money              { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money              { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Mul(s decimal.Decimal) Money    { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money    { return Money{Value: m.Value.Div(s)} }
func (m Money) Neg() Money                     { return Money{Value: m.Value.Neg()} }
func (m Money) IsZero() bool                   { return m.Value.IsZero() }
func (m Money) IsNegative() bool               { return m.Value.IsNegative() }
func (m Money) IsPositive() bool               { return m.Value.IsPositive() }
func (m Money) GreaterThan(b Money) bool       { return m.Value.GreaterThan(b.Value) }
func (m Money) LessThan(b Money) bool          { return m.Value.LessThan(b.Value) }
func (m Money) Equal(b Money) bool             { return m.Value.Equal(b.Value) }

// Round2 rounds to whole cents. Totals keep full precision internally;
// rounding happens at the display boundary.
func (m Money) Round2() Money {
	return Money{Value: m.Value.Round(2)}
}

func (m Money) Float64() float64 {
	f, _ := m.Value.Float64()
	return f
}

func (m Money) String() string {
	return m.Value.StringFixed(2)
}

// =============================================================================
// TRUE RATE - Total gross divided by hours worked, or explicitly undefined
// =============================================================================

// TrueRate is the single comparable hourly figure across dissimilar offers.
// When no hours are worked (a contract that is entirely weeks off) the rate
// has no defined value; Defined is false and Value is zero. Callers must
// render the undefined case as "N/A", never as a calculated-looking number.
type TrueRate struct {
	Value   Money
	Defined bool
}

func DefinedRate(m Money) TrueRate {
	return TrueRate{Value: m, Defined: true}
}

func UndefinedRate() TrueRate {
	return TrueRate{}
}

// =============================================================================
// COMPONENT TOTALS - One contract-wide total per compensation type
// =============================================================================

type ComponentTotals struct {
	Base            Money
	Overtime        Money
	Call            Money
	Callback        Money
	Housing         Money
	Meal            Money
	Mileage         Money
	Travel          Money
	OtherStipends   Money
	CompletionBonus Money
}

// Sum returns the total gross contract value: the exact sum of every
// component, no rounding in between.
func (c ComponentTotals) Sum() Money {
	return c.Base.
		Add(c.Overtime).
		Add(c.Call).
		Add(c.Callback).
		Add(c.Housing).
		Add(c.Meal).
		Add(c.Mileage).
		Add(c.Travel).
		Add(c.OtherStipends).
		Add(c.CompletionBonus)
}

// =============================================================================
// RESULT - Immutable output of one computation
// =============================================================================

// CompensationResult is derived purely from a valid CompensationInput.
// Recomputing from the same input always yields an identical result.
type CompensationResult struct {
	// Weeks actually on assignment: contract length minus weeks off,
	// clamped at zero.
	WorkingWeeks decimal.Decimal

	// Hours worked over the whole contract: (regular + overtime) per week
	// times working weeks. On-call and callback hours are paid but not
	// "worked"; they are tracked separately below and excluded from the
	// true-rate denominator.
	TotalHours decimal.Decimal

	// On-call and callback hours over the whole contract, for display.
	CallHoursTotal     decimal.Decimal
	CallbackHoursTotal decimal.Decimal

	// Base plus overtime pay for one working week.
	WeeklyGrossPay Money

	Components ComponentTotals

	TotalGrossContractValue Money

	TrueHourlyRate TrueRate

	// Informational passthrough; affects no total.
	ShiftsPerWeek decimal.Decimal
}
