/*
Package calculator provides the page-level views over the compensation
engine.

PURPOSE:
  The product ships three calculator pages - Contract, Paycheck, and
  Normalized - that historically re-implemented overlapping versions of
  the same math with inconsistent field sets. Here each page is a thin
  adapter: it selects which subset of engine fields it exposes, converts
  form values into an engine.RawInput, and calls the one engine. No
  calculation rule lives in this package.

VIEWS:
  ContractForm:   full contract field set, whole-contract totals
  PaycheckForm:   contract fields + pay period, per-paycheck figures
  NormalizedForm: superset including shiftsPerWeek, built for comparison

COMPARISON:
  CompareOffers evaluates a batch of offers and ranks them by true hourly
  rate so dissimilar stipend/base-pay mixes can be compared on equal
  footing.

SEE ALSO:
  - engine/: The calculation core all views delegate to
*/
package calculator

import (
	"github.com/locumtruerate/comp-engine/engine"
)

// =============================================================================
// CONTRACT VIEW
// =============================================================================

// ContractForm carries the Contract Calculator page's inputs as submitted.
// Empty strings are "not provided"; the engine validator applies defaults
// and reports field errors.
type ContractForm struct {
	BaseHourlyRate      string
	HoursPerWeek        string
	ContractLengthWeeks string
	WeeksOff            string

	OvertimeHours string
	OvertimeRate  string

	CallHours     string
	CallRate      string
	CallbackHours string
	CallbackRate  string

	HousingStipendWeekly        string
	MealStipendDaily            string
	MileageReimbursementPerMile string
	DailyRoundTripMiles         string

	TravelReimbursementTotal string
	OtherStipendsTotal       string
	CompletionBonus          string
}

// RawInput converts the form into the engine's input map, skipping fields
// the user left blank.
func (f ContractForm) RawInput() engine.RawInput {
	raw := engine.RawInput{}
	set := func(field engine.Field, value string) {
		if value != "" {
			raw[field] = value
		}
	}

	set(engine.FieldBaseHourlyRate, f.BaseHourlyRate)
	set(engine.FieldHoursPerWeek, f.HoursPerWeek)
	set(engine.FieldContractLengthWeeks, f.ContractLengthWeeks)
	set(engine.FieldWeeksOff, f.WeeksOff)
	set(engine.FieldOvertimeHours, f.OvertimeHours)
	set(engine.FieldOvertimeRate, f.OvertimeRate)
	set(engine.FieldCallHours, f.CallHours)
	set(engine.FieldCallRate, f.CallRate)
	set(engine.FieldCallbackHours, f.CallbackHours)
	set(engine.FieldCallbackRate, f.CallbackRate)
	set(engine.FieldHousingStipendWeekly, f.HousingStipendWeekly)
	set(engine.FieldMealStipendDaily, f.MealStipendDaily)
	set(engine.FieldMileageReimbursementPerMile, f.MileageReimbursementPerMile)
	set(engine.FieldDailyRoundTripMiles, f.DailyRoundTripMiles)
	set(engine.FieldTravelReimbursementTotal, f.TravelReimbursementTotal)
	set(engine.FieldOtherStipendsTotal, f.OtherStipendsTotal)
	set(engine.FieldCompletionBonus, f.CompletionBonus)

	return raw
}

// Evaluate runs the engine over the form.
func (f ContractForm) Evaluate() (*engine.CompensationResult, engine.FieldErrors) {
	return engine.Compute(f.RawInput())
}
