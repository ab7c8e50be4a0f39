/*
schedule.go - Working-time resolution

PURPOSE:
  Resolves the two time quantities every downstream calculation consumes:

  1. Working weeks: contract length minus declared weeks off, clamped at
     zero. Computed ONCE per evaluation and shared by every weekly
     component so the multiplier cannot drift between calculators.
  2. Pay-period length: how many weeks one paycheck covers, for the
     paycheck view (daily, weekly, biweekly, monthly).

SEE ALSO:
  - components.go: Every weekly component multiplies by working weeks
*/
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// WORKING WEEKS
// =============================================================================

// WorkingWeeks returns max(0, contractLengthWeeks - weeksOff).
// The validator rejects weeksOff >= contractLengthWeeks, so under normal
// flow this is positive; the clamp protects hand-built inputs.
func WorkingWeeks(contractLengthWeeks, weeksOff decimal.Decimal) decimal.Decimal {
	ww := contractLengthWeeks.Sub(weeksOff)
	if ww.IsNegative() {
		return decimal.Zero
	}
	return ww
}

// =============================================================================
// PAY PERIODS
// =============================================================================

// PayPeriod is how often a paycheck is issued.
type PayPeriod string

const (
	PayPeriodDaily    PayPeriod = "daily"
	PayPeriodWeekly   PayPeriod = "weekly"
	PayPeriodBiweekly PayPeriod = "biweekly"
	PayPeriodMonthly  PayPeriod = "monthly"
)

// Weeks returns how many weeks of pay one period covers.
// Monthly is 52/12 weeks, not "4 weeks": a month of pay is one twelfth of
// a year, and a year is 52 weeks.
func (p PayPeriod) Weeks() decimal.Decimal {
	switch p {
	case PayPeriodDaily:
		return decimal.NewFromInt(1).Div(decimal.NewFromInt(7))
	case PayPeriodWeekly:
		return decimal.NewFromInt(1)
	case PayPeriodBiweekly:
		return decimal.NewFromInt(2)
	case PayPeriodMonthly:
		return decimal.NewFromInt(52).Div(decimal.NewFromInt(12))
	default:
		return decimal.NewFromInt(1)
	}
}

func (p PayPeriod) Valid() bool {
	switch p {
	case PayPeriodDaily, PayPeriodWeekly, PayPeriodBiweekly, PayPeriodMonthly:
		return true
	}
	return false
}

// ParsePayPeriod converts a form value into a PayPeriod. Empty defaults to
// weekly, matching the paycheck page's default selection.
func ParsePayPeriod(s string) (PayPeriod, error) {
	if s == "" {
		return PayPeriodWeekly, nil
	}
	p := PayPeriod(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown pay period %q", s)
	}
	return p, nil
}
