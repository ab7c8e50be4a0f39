package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/locumtruerate/comp-engine/engine"
)

// =============================================================================
// VALIDATION HELPERS
// =============================================================================

func deci(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustFail(t *testing.T, raw engine.RawInput) engine.FieldErrors {
	t.Helper()
	result, errs := engine.Compute(raw)
	if result != nil {
		t.Fatal("expected validation failure, got a result")
	}
	if len(errs) == 0 {
		t.Fatal("expected at least one field error")
	}
	return errs
}

func hasError(errs engine.FieldErrors, f engine.Field, kind engine.ErrorKind) bool {
	for _, e := range errs.ByField(f) {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// =============================================================================
// REQUIRED FIELDS
// =============================================================================

func TestValidate_MissingRequiredFields(t *testing.T) {
	// An empty submission names all three required fields.
	errs := mustFail(t, engine.RawInput{})

	for _, f := range []engine.Field{
		engine.FieldBaseHourlyRate,
		engine.FieldHoursPerWeek,
		engine.FieldContractLengthWeeks,
	} {
		if len(errs.ByField(f)) == 0 {
			t.Errorf("missing error for required field %s", f)
		}
	}
}

func TestValidate_ZeroHoursRejected(t *testing.T) {
	// GIVEN: hoursPerWeek = 0
	// THEN:  a domain error on that field, "must be greater than zero"

	errs := mustFail(t, engine.RawInput{
		engine.FieldBaseHourlyRate:      "85",
		engine.FieldHoursPerWeek:        "0",
		engine.FieldContractLengthWeeks: "13",
	})

	fieldErrs := errs.ByField(engine.FieldHoursPerWeek)
	if len(fieldErrs) != 1 {
		t.Fatalf("want exactly one error on hoursPerWeek, got %d", len(fieldErrs))
	}
	if fieldErrs[0].Message != "must be greater than zero" {
		t.Errorf("message = %q", fieldErrs[0].Message)
	}
	if fieldErrs[0].Kind != engine.KindDomain {
		t.Errorf("kind = %s, want domain", fieldErrs[0].Kind)
	}
}

func TestValidate_HoursCeiling(t *testing.T) {
	errs := mustFail(t, engine.RawInput{
		engine.FieldBaseHourlyRate:      "85",
		engine.FieldHoursPerWeek:        "169",
		engine.FieldContractLengthWeeks: "13",
	})

	fieldErrs := errs.ByField(engine.FieldHoursPerWeek)
	if len(fieldErrs) != 1 || fieldErrs[0].Message != "cannot exceed 168 hours/week" {
		t.Errorf("unexpected errors: %v", fieldErrs)
	}

	// Exactly 168 is allowed.
	if _, errs := engine.Compute(engine.RawInput{
		engine.FieldBaseHourlyRate:      "85",
		engine.FieldHoursPerWeek:        "168",
		engine.FieldContractLengthWeeks: "13",
	}); errs != nil {
		t.Errorf("168 hours/week should validate: %v", errs)
	}
}

func TestValidate_BaseRateCeiling(t *testing.T) {
	// A $10,000/hr ceiling catches fat-fingered rates.
	errs := mustFail(t, engine.RawInput{
		engine.FieldBaseHourlyRate:      "10000.01",
		engine.FieldHoursPerWeek:        "40",
		engine.FieldContractLengthWeeks: "13",
	})
	if !hasError(errs, engine.FieldBaseHourlyRate, engine.KindDomain) {
		t.Error("expected domain error on baseHourlyRate")
	}
}

func TestValidate_ContractLengthAtLeastOneWeek(t *testing.T) {
	errs := mustFail(t, engine.RawInput{
		engine.FieldBaseHourlyRate:      "85",
		engine.FieldHoursPerWeek:        "40",
		engine.FieldContractLengthWeeks: "0.5",
	})
	if !hasError(errs, engine.FieldContractLengthWeeks, engine.KindDomain) {
		t.Error("expected domain error on contractLengthWeeks")
	}
}

// =============================================================================
// CROSS-FIELD AND OPTIONAL FIELDS
// =============================================================================

func TestValidate_WeeksOffMustBeLessThanContractLength(t *testing.T) {
	// GIVEN: weeksOff = contractLengthWeeks = 13
	// THEN:  rejected before any computation

	errs := mustFail(t, engine.RawInput{
		engine.FieldBaseHourlyRate:      "85",
		engine.FieldHoursPerWeek:        "40",
		engine.FieldContractLengthWeeks: "13",
		engine.FieldWeeksOff:            "13",
	})

	fieldErrs := errs.ByField(engine.FieldWeeksOff)
	if len(fieldErrs) != 1 || fieldErrs[0].Message != "weeks off must be less than contract length" {
		t.Errorf("unexpected errors: %v", fieldErrs)
	}
}

func TestValidate_NegativeOptionalFieldsRejected(t *testing.T) {
	// Negative compensation or time is never valid, on any field.
	for _, f := range []engine.Field{
		engine.FieldWeeksOff,
		engine.FieldOvertimeHours,
		engine.FieldOvertimeRate,
		engine.FieldCallHours,
		engine.FieldCallRate,
		engine.FieldCallbackHours,
		engine.FieldCallbackRate,
		engine.FieldHousingStipendWeekly,
		engine.FieldMealStipendDaily,
		engine.FieldMileageReimbursementPerMile,
		engine.FieldDailyRoundTripMiles,
		engine.FieldTravelReimbursementTotal,
		engine.FieldOtherStipendsTotal,
		engine.FieldCompletionBonus,
		engine.FieldShiftsPerWeek,
	} {
		raw := engine.RawInput{
			engine.FieldBaseHourlyRate:      "85",
			engine.FieldHoursPerWeek:        "40",
			engine.FieldContractLengthWeeks: "13",
		}
		raw[f] = "-1"

		errs := mustFail(t, raw)
		if !hasError(errs, f, engine.KindDomain) {
			t.Errorf("negative %s should produce a domain error", f)
		}
	}
}

// =============================================================================
// PARSE vs DOMAIN
// =============================================================================

func TestValidate_NonNumericIsParseError(t *testing.T) {
	// Parse failures are distinct from range failures so UIs can render
	// different messages.
	errs := mustFail(t, engine.RawInput{
		engine.FieldBaseHourlyRate:      "eighty-five",
		engine.FieldHoursPerWeek:        "40",
		engine.FieldContractLengthWeeks: "13",
	})

	fieldErrs := errs.ByField(engine.FieldBaseHourlyRate)
	if len(fieldErrs) != 1 {
		t.Fatalf("want exactly one error, got %d", len(fieldErrs))
	}
	if fieldErrs[0].Kind != engine.KindParse {
		t.Errorf("kind = %s, want parse", fieldErrs[0].Kind)
	}
	if !engine.IsParseError(fieldErrs[0]) {
		t.Error("IsParseError should match")
	}
	if engine.IsDomainError(fieldErrs[0]) {
		t.Error("a parse error is not a domain error")
	}
}

func TestValidate_AllErrorsCollected(t *testing.T) {
	// Validation does not stop at the first failure.
	errs := mustFail(t, engine.RawInput{
		engine.FieldBaseHourlyRate: "x",
		engine.FieldHoursPerWeek:   "-5",
		engine.FieldCallRate:       "oops",
	})

	if !hasError(errs, engine.FieldBaseHourlyRate, engine.KindParse) {
		t.Error("missing parse error on baseHourlyRate")
	}
	if !hasError(errs, engine.FieldHoursPerWeek, engine.KindDomain) {
		t.Error("missing domain error on hoursPerWeek")
	}
	if !hasError(errs, engine.FieldCallRate, engine.KindParse) {
		t.Error("missing parse error on callRate")
	}
	if len(errs.ByField(engine.FieldContractLengthWeeks)) == 0 {
		t.Error("missing required-field error on contractLengthWeeks")
	}
}

// =============================================================================
// ACCEPTED SHAPES
// =============================================================================

func TestValidate_DecimalsAccepted(t *testing.T) {
	// Fractional hours and fractional money are legitimate everywhere.
	in, errs := engine.Validate(engine.RawInput{
		engine.FieldBaseHourlyRate:      "87.50",
		engine.FieldHoursPerWeek:        "37.5",
		engine.FieldContractLengthWeeks: "13",
		engine.FieldOvertimeRate:        "131.25",
		engine.FieldOvertimeHours:       "2.5",
	})
	if errs != nil {
		t.Fatalf("decimal input should validate: %v", errs)
	}
	if !in.HoursPerWeek.Equal(deci("37.5")) {
		t.Errorf("HoursPerWeek = %s", in.HoursPerWeek)
	}
}

func TestValidate_OptionalFieldsDefaultToZero(t *testing.T) {
	in, errs := engine.Validate(engine.RawInput{
		engine.FieldBaseHourlyRate:      "85",
		engine.FieldHoursPerWeek:        "40",
		engine.FieldContractLengthWeeks: "13",
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if !in.WeeksOff.IsZero() || !in.OvertimeHours.IsZero() || !in.OvertimeRate.IsZero() {
		t.Error("optional fields should default to zero")
	}
	if !in.CompletionBonus.IsZero() || !in.ShiftsPerWeek.IsZero() {
		t.Error("optional fields should default to zero")
	}
}

func TestValidate_EmptyStringSameAsMissing(t *testing.T) {
	withEmpty := engine.RawInput{
		engine.FieldBaseHourlyRate:      "85",
		engine.FieldHoursPerWeek:        "40",
		engine.FieldContractLengthWeeks: "13",
		engine.FieldWeeksOff:            "",
	}
	a, errs := engine.Validate(withEmpty)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !a.WeeksOff.IsZero() {
		t.Error("empty string should mean zero")
	}
}
