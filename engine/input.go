/*
input.go - Field registry and input validation

PURPOSE:
  The validator is the engine's authoritative boundary: a RawInput (field
  name to possibly-missing form value) either becomes a fully-defaulted
  CompensationInput or a list of field-scoped errors. Nothing past the
  validator needs further checking.

FIELD RULES:
  Required (> 0):
    baseHourlyRate        also capped at $10,000/hr to catch typos
    hoursPerWeek          also capped at 168 (24x7 hard ceiling)
    contractLengthWeeks   at least 1 week

  Optional (>= 0, default 0):
    every other field; negative compensation or time is never valid

  Cross-field:
    weeksOff < contractLengthWeeks

  Decimals are accepted everywhere money or fractional time is legitimate
  (37.5 hours, $1.375 overtime premium, 12.5 weeks).

SEE ALSO:
  - errors.go: FieldError / FieldErrors
  - engine.go: Compute, which runs this validator first
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// FIELD REGISTRY
// =============================================================================

// Field identifies one input field. The string values match the form field
// names the calculator pages submit.
type Field string

const (
	FieldBaseHourlyRate              Field = "baseHourlyRate"
	FieldHoursPerWeek                Field = "hoursPerWeek"
	FieldContractLengthWeeks         Field = "contractLengthWeeks"
	FieldWeeksOff                    Field = "weeksOff"
	FieldOvertimeHours               Field = "overtimeHours"
	FieldOvertimeRate                Field = "overtimeRate"
	FieldCallHours                   Field = "callHours"
	FieldCallRate                    Field = "callRate"
	FieldCallbackHours               Field = "callbackHours"
	FieldCallbackRate                Field = "callbackRate"
	FieldHousingStipendWeekly        Field = "housingStipendWeekly"
	FieldMealStipendDaily            Field = "mealStipendDaily"
	FieldMileageReimbursementPerMile Field = "mileageReimbursementPerMile"
	FieldDailyRoundTripMiles         Field = "dailyRoundTripMiles"
	FieldTravelReimbursementTotal    Field = "travelReimbursementTotal"
	FieldOtherStipendsTotal          Field = "otherStipendsTotal"
	FieldCompletionBonus             Field = "completionBonus"
	FieldShiftsPerWeek               Field = "shiftsPerWeek"
)

// RawInput carries form values as submitted. A missing key and an empty
// string are both "not provided".
type RawInput map[Field]string

// MaxBaseHourlyRate is a sanity ceiling to catch input errors, not a
// statement about market rates.
var MaxBaseHourlyRate = decimal.NewFromInt(10000)

// MaxHoursPerWeek is the 24x7 hard ceiling.
var MaxHoursPerWeek = decimal.NewFromInt(168)

// =============================================================================
// VALIDATED INPUT
// =============================================================================

// CompensationInput is one contract/paycheck scenario with every optional
// field defaulted to zero. Construct via Validate; a hand-built value is
// assumed to already satisfy the field rules.
type CompensationInput struct {
	BaseHourlyRate      Money
	HoursPerWeek        decimal.Decimal
	ContractLengthWeeks decimal.Decimal
	WeeksOff            decimal.Decimal

	OvertimeHours decimal.Decimal
	// OvertimeRate is user-supplied and independent of the base rate.
	// An unset rate stays zero; it is never inferred as 1.5x base.
	OvertimeRate Money

	CallHours     decimal.Decimal
	CallRate      Money
	CallbackHours decimal.Decimal
	CallbackRate  Money

	HousingStipendWeekly        Money
	MealStipendDaily            Money
	MileageReimbursementPerMile Money
	DailyRoundTripMiles         decimal.Decimal

	TravelReimbursementTotal Money
	OtherStipendsTotal       Money
	CompletionBonus          Money

	// ShiftsPerWeek is informational and affects no total.
	ShiftsPerWeek decimal.Decimal
}

// MileageRate resolves the per-mile rate for this input: the user-supplied
// rate when positive, otherwise the pinned IRS standard rate.
func (in *CompensationInput) MileageRate() Money {
	if in.MileageReimbursementPerMile.IsPositive() {
		return in.MileageReimbursementPerMile
	}
	return CurrentIRSMileageRate()
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validate checks every field of raw and returns either a fully-defaulted
// CompensationInput or the complete list of violations. All fields are
// checked; the first error does not stop validation.
func Validate(raw RawInput) (*CompensationInput, FieldErrors) {
	var errs FieldErrors
	in := &CompensationInput{}

	// Required fields
	base, ok := parseRequired(raw, FieldBaseHourlyRate, &errs)
	if ok {
		if base.GreaterThan(MaxBaseHourlyRate) {
			errs = append(errs, domainError(FieldBaseHourlyRate, "cannot exceed $10,000/hour"))
		} else {
			in.BaseHourlyRate = NewMoneyFromDecimal(base)
		}
	}

	hours, ok := parseRequired(raw, FieldHoursPerWeek, &errs)
	if ok {
		if hours.GreaterThan(MaxHoursPerWeek) {
			errs = append(errs, domainError(FieldHoursPerWeek, "cannot exceed 168 hours/week"))
		} else {
			in.HoursPerWeek = hours
		}
	}

	length, lengthOK := parseField(raw, FieldContractLengthWeeks, &errs)
	if lengthOK {
		if !hasValue(raw, FieldContractLengthWeeks) || length.LessThan(decimal.NewFromInt(1)) {
			errs = append(errs, domainError(FieldContractLengthWeeks, "must be at least 1 week"))
			lengthOK = false
		} else {
			in.ContractLengthWeeks = length
		}
	}

	// Optional fields: absent means zero, negative is never valid.
	weeksOff, weeksOffOK := parseOptional(raw, FieldWeeksOff, &errs)
	if weeksOffOK && lengthOK && weeksOff.GreaterThanOrEqual(length) {
		errs = append(errs, domainError(FieldWeeksOff, "weeks off must be less than contract length"))
		weeksOffOK = false
	}
	if weeksOffOK {
		in.WeeksOff = weeksOff
	}

	in.OvertimeHours = optionalQuantity(raw, FieldOvertimeHours, &errs)
	in.OvertimeRate = optionalMoney(raw, FieldOvertimeRate, &errs)
	in.CallHours = optionalQuantity(raw, FieldCallHours, &errs)
	in.CallRate = optionalMoney(raw, FieldCallRate, &errs)
	in.CallbackHours = optionalQuantity(raw, FieldCallbackHours, &errs)
	in.CallbackRate = optionalMoney(raw, FieldCallbackRate, &errs)
	in.HousingStipendWeekly = optionalMoney(raw, FieldHousingStipendWeekly, &errs)
	in.MealStipendDaily = optionalMoney(raw, FieldMealStipendDaily, &errs)
	in.MileageReimbursementPerMile = optionalMoney(raw, FieldMileageReimbursementPerMile, &errs)
	in.DailyRoundTripMiles = optionalQuantity(raw, FieldDailyRoundTripMiles, &errs)
	in.TravelReimbursementTotal = optionalMoney(raw, FieldTravelReimbursementTotal, &errs)
	in.OtherStipendsTotal = optionalMoney(raw, FieldOtherStipendsTotal, &errs)
	in.CompletionBonus = optionalMoney(raw, FieldCompletionBonus, &errs)
	in.ShiftsPerWeek = optionalQuantity(raw, FieldShiftsPerWeek, &errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return in, nil
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func hasValue(raw RawInput, f Field) bool {
	return raw[f] != ""
}

// parseField reads a field as a decimal. Returns ok=false and records a
// parse error when the value is present but not numeric. An absent value
// parses as zero with ok=true; required/optional semantics are layered on
// top by the callers.
func parseField(raw RawInput, f Field, errs *FieldErrors) (decimal.Decimal, bool) {
	s := raw[f]
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		*errs = append(*errs, parseError(f))
		return decimal.Zero, false
	}
	return d, true
}

// parseRequired enforces presence and strict positivity.
func parseRequired(raw RawInput, f Field, errs *FieldErrors) (decimal.Decimal, bool) {
	d, ok := parseField(raw, f, errs)
	if !ok {
		return decimal.Zero, false
	}
	if !hasValue(raw, f) || !d.IsPositive() {
		*errs = append(*errs, domainError(f, "must be greater than zero"))
		return decimal.Zero, false
	}
	return d, true
}

// parseOptional enforces non-negativity on a present value.
func parseOptional(raw RawInput, f Field, errs *FieldErrors) (decimal.Decimal, bool) {
	d, ok := parseField(raw, f, errs)
	if !ok {
		return decimal.Zero, false
	}
	if d.IsNegative() {
		*errs = append(*errs, domainError(f, "must not be negative"))
		return decimal.Zero, false
	}
	return d, true
}

func optionalQuantity(raw RawInput, f Field, errs *FieldErrors) decimal.Decimal {
	d, _ := parseOptional(raw, f, errs)
	return d
}

func optionalMoney(raw RawInput, f Field, errs *FieldErrors) Money {
	d, _ := parseOptional(raw, f, errs)
	return NewMoneyFromDecimal(d)
}
