/*
components.go - Per-component calculation rules

PURPOSE:
  One calculation rule per compensation type. Each calculator is a
  stateless function of the validated input and the shared working-weeks
  value; no calculator depends on another's output.

WEEKLY vs ONE-TIME:
  Weekly components (base, overtime, call, callback, housing, meal,
  mileage) scale with working weeks and evaluate to zero when working
  weeks is zero. One-time components (travel, other stipends, completion
  bonus) apply once in full regardless of working weeks.

MILEAGE:
  Reimbursement uses the per-mile rate the user supplies when present,
  otherwise the published IRS standard mileage rate for the pinned year.
  The IRS rate changes annually, so it lives in a per-year table rather
  than as a bare literal.
*/
package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IRS STANDARD MILEAGE RATE - Versioned per-year constants
// =============================================================================

// MileageRateYear pins which year's IRS rate applies when the user leaves
// the per-mile rate blank. Bump once per year alongside the table below.
const MileageRateYear = 2025

// Published IRS standard mileage rates for business use, dollars per mile.
var irsMileageRates = map[int]decimal.Decimal{
	2023: decimal.RequireFromString("0.655"),
	2024: decimal.RequireFromString("0.67"),
	2025: decimal.RequireFromString("0.70"),
}

// IRSMileageRate returns the published rate for a year.
func IRSMileageRate(year int) (Money, bool) {
	d, ok := irsMileageRates[year]
	if !ok {
		return MoneyZero(), false
	}
	return NewMoneyFromDecimal(d), true
}

// CurrentIRSMileageRate returns the rate for MileageRateYear.
func CurrentIRSMileageRate() Money {
	m, _ := IRSMileageRate(MileageRateYear)
	return m
}

// MileageRateYears returns the years with a published rate, ascending.
func MileageRateYears() []int {
	years := make([]int, 0, len(irsMileageRates))
	for y := range irsMileageRates {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// mealDaysPerWeek converts the daily meal stipend to a weekly total.
// Stipends cover every day on assignment, not just worked shifts.
var mealDaysPerWeek = decimal.NewFromInt(7)

// =============================================================================
// WEEKLY COMPONENTS - scale with working weeks
// =============================================================================

func basePay(in *CompensationInput, workingWeeks decimal.Decimal) Money {
	return in.BaseHourlyRate.Mul(in.HoursPerWeek).Mul(workingWeeks)
}

func overtimePay(in *CompensationInput, workingWeeks decimal.Decimal) Money {
	return in.OvertimeRate.Mul(in.OvertimeHours).Mul(workingWeeks)
}

func callPay(in *CompensationInput, workingWeeks decimal.Decimal) Money {
	return in.CallRate.Mul(in.CallHours).Mul(workingWeeks)
}

func callbackPay(in *CompensationInput, workingWeeks decimal.Decimal) Money {
	return in.CallbackRate.Mul(in.CallbackHours).Mul(workingWeeks)
}

func housingStipend(in *CompensationInput, workingWeeks decimal.Decimal) Money {
	return in.HousingStipendWeekly.Mul(workingWeeks)
}

func mealStipend(in *CompensationInput, workingWeeks decimal.Decimal) Money {
	return in.MealStipendDaily.Mul(mealDaysPerWeek).Mul(workingWeeks)
}

func mileageReimbursement(in *CompensationInput, workingWeeks decimal.Decimal) Money {
	return in.MileageRate().Mul(in.DailyRoundTripMiles).Mul(workingWeeks)
}

// =============================================================================
// ONE-TIME COMPONENTS - applied once, never multiplied by weeks
// =============================================================================

func travelReimbursement(in *CompensationInput) Money {
	return in.TravelReimbursementTotal
}

func otherStipends(in *CompensationInput) Money {
	return in.OtherStipendsTotal
}

func completionBonus(in *CompensationInput) Money {
	return in.CompletionBonus
}

// componentTotals runs every calculator over the same input and shared
// working-weeks value.
func componentTotals(in *CompensationInput, workingWeeks decimal.Decimal) ComponentTotals {
	return ComponentTotals{
		Base:            basePay(in, workingWeeks),
		Overtime:        overtimePay(in, workingWeeks),
		Call:            callPay(in, workingWeeks),
		Callback:        callbackPay(in, workingWeeks),
		Housing:         housingStipend(in, workingWeeks),
		Meal:            mealStipend(in, workingWeeks),
		Mileage:         mileageReimbursement(in, workingWeeks),
		Travel:          travelReimbursement(in),
		OtherStipends:   otherStipends(in),
		CompletionBonus: completionBonus(in),
	}
}
