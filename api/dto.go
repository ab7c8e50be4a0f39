/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the engine
  types from the external contract.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO: Response types returned to clients

FIELD NAMES:
  Calculation input fields use the same camelCase names as the calculator
  form controls and as the `field` values in validation error responses,
  so a client can map an error straight onto the offending control.
  Wrapper metadata (label, save, pagination-style fields) is snake_case.

VALIDATION:
  Request-shape concerns (label length, offer-count bounds) carry
  validator/v10 tags and are checked in handlers. Calculation fields are
  deliberately untagged: the engine's validator is the authoritative
  boundary for those and reports parse/domain errors per field.

SEE ALSO:
  - handlers.go: Uses these types
  - engine/input.go: The authoritative field rules
*/
package api

import (
	"encoding/json"
	"time"

	"github.com/locumtruerate/comp-engine/calculator"
	"github.com/locumtruerate/comp-engine/engine"
	"github.com/locumtruerate/comp-engine/store/sqlite"
)

// =============================================================================
// FLEXIBLE FIELD VALUES
// =============================================================================

// FieldValue accepts a JSON number or string and preserves the raw text, so
// the engine's parser sees exactly what the form submitted. Non-numeric
// text is not rejected here; it becomes a field-scoped parse error from
// the engine instead of an opaque decode failure.
type FieldValue string

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FieldValue(s)
		return nil
	}
	*v = FieldValue(data)
	return nil
}

// =============================================================================
// REQUEST TYPES
// =============================================================================

// CalculationInputDTO mirrors the calculator form controls.
type CalculationInputDTO struct {
	BaseHourlyRate      FieldValue `json:"baseHourlyRate"`
	HoursPerWeek        FieldValue `json:"hoursPerWeek"`
	ContractLengthWeeks FieldValue `json:"contractLengthWeeks"`
	WeeksOff            FieldValue `json:"weeksOff"`

	OvertimeHours FieldValue `json:"overtimeHours"`
	OvertimeRate  FieldValue `json:"overtimeRate"`

	CallHours     FieldValue `json:"callHours"`
	CallRate      FieldValue `json:"callRate"`
	CallbackHours FieldValue `json:"callbackHours"`
	CallbackRate  FieldValue `json:"callbackRate"`

	HousingStipendWeekly        FieldValue `json:"housingStipendWeekly"`
	MealStipendDaily            FieldValue `json:"mealStipendDaily"`
	MileageReimbursementPerMile FieldValue `json:"mileageReimbursementPerMile"`
	DailyRoundTripMiles         FieldValue `json:"dailyRoundTripMiles"`

	TravelReimbursementTotal FieldValue `json:"travelReimbursementTotal"`
	OtherStipendsTotal       FieldValue `json:"otherStipendsTotal"`
	CompletionBonus          FieldValue `json:"completionBonus"`

	ShiftsPerWeek FieldValue `json:"shiftsPerWeek"`
	PayPeriod     string     `json:"payPeriod,omitempty"`
}

func (d CalculationInputDTO) contractForm() calculator.ContractForm {
	return calculator.ContractForm{
		BaseHourlyRate:              string(d.BaseHourlyRate),
		HoursPerWeek:                string(d.HoursPerWeek),
		ContractLengthWeeks:         string(d.ContractLengthWeeks),
		WeeksOff:                    string(d.WeeksOff),
		OvertimeHours:               string(d.OvertimeHours),
		OvertimeRate:                string(d.OvertimeRate),
		CallHours:                   string(d.CallHours),
		CallRate:                    string(d.CallRate),
		CallbackHours:               string(d.CallbackHours),
		CallbackRate:                string(d.CallbackRate),
		HousingStipendWeekly:        string(d.HousingStipendWeekly),
		MealStipendDaily:            string(d.MealStipendDaily),
		MileageReimbursementPerMile: string(d.MileageReimbursementPerMile),
		DailyRoundTripMiles:         string(d.DailyRoundTripMiles),
		TravelReimbursementTotal:    string(d.TravelReimbursementTotal),
		OtherStipendsTotal:          string(d.OtherStipendsTotal),
		CompletionBonus:             string(d.CompletionBonus),
	}
}

func (d CalculationInputDTO) normalizedForm() calculator.NormalizedForm {
	return calculator.NormalizedForm{
		ContractForm:  d.contractForm(),
		ShiftsPerWeek: string(d.ShiftsPerWeek),
	}
}

func (d CalculationInputDTO) paycheckForm() calculator.PaycheckForm {
	return calculator.PaycheckForm{
		ContractForm: d.contractForm(),
		PayPeriod:    d.PayPeriod,
	}
}

// CalculationRequest is the body of the compute endpoints.
type CalculationRequest struct {
	Label string              `json:"label" validate:"max=120"`
	Save  bool                `json:"save"`
	Input CalculationInputDTO `json:"input"`
}

// CompareOfferDTO is one labeled offer in a comparison.
type CompareOfferDTO struct {
	Label string              `json:"label" validate:"required,max=120"`
	Input CalculationInputDTO `json:"input"`
}

// CompareRequest is the body of the compare endpoint.
type CompareRequest struct {
	Offers []CompareOfferDTO `json:"offers" validate:"min=2,max=25,dive"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ValidationErrorDTO is one field-scoped validation failure.
type ValidationErrorDTO struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ValidationFailureResponse is returned with HTTP 422.
type ValidationFailureResponse struct {
	Errors []ValidationErrorDTO `json:"errors"`
}

// ComponentTotalsDTO carries the per-component contract totals.
type ComponentTotalsDTO struct {
	Base            float64 `json:"base"`
	Overtime        float64 `json:"overtime"`
	Call            float64 `json:"call"`
	Callback        float64 `json:"callback"`
	Housing         float64 `json:"housing"`
	Meal            float64 `json:"meal"`
	Mileage         float64 `json:"mileage"`
	Travel          float64 `json:"travel"`
	OtherStipends   float64 `json:"other_stipends"`
	CompletionBonus float64 `json:"completion_bonus"`
}

// FormattedDTO carries display-ready strings so clients render exactly
// what the engine computed.
type FormattedDTO struct {
	WeeklyGrossPay          string `json:"weekly_gross_pay"`
	TotalGrossContractValue string `json:"total_gross_contract_value"`
	TrueHourlyRate          string `json:"true_hourly_rate"`
}

// CalculationResultDTO is the computed contract evaluation.
type CalculationResultDTO struct {
	ID                      string             `json:"id,omitempty"`
	WorkingWeeks            float64            `json:"working_weeks"`
	TotalHours              float64            `json:"total_hours"`
	CallHoursTotal          float64            `json:"call_hours_total"`
	CallbackHoursTotal      float64            `json:"callback_hours_total"`
	WeeklyGrossPay          float64            `json:"weekly_gross_pay"`
	Components              ComponentTotalsDTO `json:"components"`
	TotalGrossContractValue float64            `json:"total_gross_contract_value"`
	TrueHourlyRate          *float64           `json:"true_hourly_rate"`
	ShiftsPerWeek           float64            `json:"shifts_per_week,omitempty"`
	Formatted               FormattedDTO       `json:"formatted"`
}

// PaycheckResultDTO is one pay period's breakdown.
type PaycheckResultDTO struct {
	Period         string               `json:"period"`
	PeriodWeeks    float64              `json:"period_weeks"`
	PeriodHours    float64              `json:"period_hours"`
	BasePay        float64              `json:"base_pay"`
	OvertimePay    float64              `json:"overtime_pay"`
	CallPay        float64              `json:"call_pay"`
	CallbackPay    float64              `json:"callback_pay"`
	Stipends       float64              `json:"stipends"`
	GrossPay       float64              `json:"gross_pay"`
	GrossPayText   string               `json:"gross_pay_text"`
	Contract       CalculationResultDTO `json:"contract"`
}

// RankedOfferDTO is one comparison row.
type RankedOfferDTO struct {
	Label  string                `json:"label"`
	Rank   int                   `json:"rank"`
	Result *CalculationResultDTO `json:"result,omitempty"`
	Errors []ValidationErrorDTO  `json:"errors,omitempty"`
}

// SavedCalculationDTO is a persisted calculation.
type SavedCalculationDTO struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	View      string          `json:"view"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt string          `json:"created_at"`
}

// MileageRateDTO is one year's published IRS rate.
type MileageRateDTO struct {
	Year    int     `json:"year"`
	Rate    float64 `json:"rate"`
	Current bool    `json:"current"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toValidationErrorDTOs(errs engine.FieldErrors) []ValidationErrorDTO {
	dtos := make([]ValidationErrorDTO, len(errs))
	for i, e := range errs {
		dtos[i] = ValidationErrorDTO{
			Field:   string(e.Field),
			Kind:    string(e.Kind),
			Message: e.Message,
		}
	}
	return dtos
}

func toCalculationResultDTO(r *engine.CompensationResult) CalculationResultDTO {
	var trueRate *float64
	if r.TrueHourlyRate.Defined {
		v := r.TrueHourlyRate.Value.Round2().Float64()
		trueRate = &v
	}

	workingWeeks, _ := r.WorkingWeeks.Float64()
	totalHours, _ := r.TotalHours.Float64()
	callHours, _ := r.CallHoursTotal.Float64()
	callbackHours, _ := r.CallbackHoursTotal.Float64()
	shifts, _ := r.ShiftsPerWeek.Float64()

	return CalculationResultDTO{
		WorkingWeeks:            workingWeeks,
		TotalHours:              totalHours,
		CallHoursTotal:          callHours,
		CallbackHoursTotal:      callbackHours,
		WeeklyGrossPay:          r.WeeklyGrossPay.Round2().Float64(),
		Components:              toComponentTotalsDTO(r.Components),
		TotalGrossContractValue: r.TotalGrossContractValue.Round2().Float64(),
		TrueHourlyRate:          trueRate,
		ShiftsPerWeek:           shifts,
		Formatted: FormattedDTO{
			WeeklyGrossPay:          engine.FormatMoney(r.WeeklyGrossPay),
			TotalGrossContractValue: engine.FormatMoney(r.TotalGrossContractValue),
			TrueHourlyRate:          engine.FormatRate(r.TrueHourlyRate),
		},
	}
}

func toComponentTotalsDTO(c engine.ComponentTotals) ComponentTotalsDTO {
	return ComponentTotalsDTO{
		Base:            c.Base.Round2().Float64(),
		Overtime:        c.Overtime.Round2().Float64(),
		Call:            c.Call.Round2().Float64(),
		Callback:        c.Callback.Round2().Float64(),
		Housing:         c.Housing.Round2().Float64(),
		Meal:            c.Meal.Round2().Float64(),
		Mileage:         c.Mileage.Round2().Float64(),
		Travel:          c.Travel.Round2().Float64(),
		OtherStipends:   c.OtherStipends.Round2().Float64(),
		CompletionBonus: c.CompletionBonus.Round2().Float64(),
	}
}

func toPaycheckResultDTO(p *calculator.PaycheckResult) PaycheckResultDTO {
	periodWeeks, _ := p.PeriodWeeks.Float64()
	periodHours, _ := p.PeriodHours.Float64()

	return PaycheckResultDTO{
		Period:       string(p.Period),
		PeriodWeeks:  periodWeeks,
		PeriodHours:  periodHours,
		BasePay:      p.BasePay.Round2().Float64(),
		OvertimePay:  p.OvertimePay.Round2().Float64(),
		CallPay:      p.CallPay.Round2().Float64(),
		CallbackPay:  p.CallbackPay.Round2().Float64(),
		Stipends:     p.Stipends.Round2().Float64(),
		GrossPay:     p.GrossPay.Round2().Float64(),
		GrossPayText: engine.FormatMoney(p.GrossPay),
		Contract:     toCalculationResultDTO(p.Contract),
	}
}

func toSavedCalculationDTO(c sqlite.SavedCalculation) SavedCalculationDTO {
	return SavedCalculationDTO{
		ID:        c.ID,
		Label:     c.Label,
		View:      c.View,
		Input:     json.RawMessage(c.InputJSON),
		Result:    json.RawMessage(c.ResultJSON),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
