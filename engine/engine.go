/*
engine.go - Aggregation and the true-rate calculation

PURPOSE:
  The single entry point callers use:

    Compute(raw) -> (*CompensationResult, FieldErrors)

  Control flow: validate -> resolve working weeks -> run every component
  calculator over the same input -> sum into totals -> derive the true
  hourly rate. Either a full result or a full error list is returned,
  never a partial result.

TRUE HOURLY RATE:
  totalGrossContractValue / totalHours, where totalHours counts regular
  and overtime hours only. On-call and callback hours are compensated but
  not "worked" (available, not working), so they are excluded from the
  denominator. When totalHours is zero the rate is explicitly undefined.

CONCURRENCY:
  No shared state anywhere; safe to call from any number of goroutines.
*/
package engine

// Compute evaluates one compensation scenario from raw form values.
func Compute(raw RawInput) (*CompensationResult, FieldErrors) {
	in, errs := Validate(raw)
	if errs != nil {
		return nil, errs
	}
	return Evaluate(in), nil
}

// Evaluate computes the result for an already-validated input. Exposed for
// callers (views, batch comparison) that construct inputs directly.
func Evaluate(in *CompensationInput) *CompensationResult {
	workingWeeks := WorkingWeeks(in.ContractLengthWeeks, in.WeeksOff)

	components := componentTotals(in, workingWeeks)
	total := components.Sum()

	weeklyGross := in.BaseHourlyRate.Mul(in.HoursPerWeek).
		Add(in.OvertimeRate.Mul(in.OvertimeHours))

	totalHours := in.HoursPerWeek.Add(in.OvertimeHours).Mul(workingWeeks)

	trueRate := UndefinedRate()
	if totalHours.IsPositive() {
		trueRate = DefinedRate(total.Div(totalHours))
	}

	return &CompensationResult{
		WorkingWeeks:            workingWeeks,
		TotalHours:              totalHours,
		CallHoursTotal:          in.CallHours.Mul(workingWeeks),
		CallbackHoursTotal:      in.CallbackHours.Mul(workingWeeks),
		WeeklyGrossPay:          weeklyGross,
		Components:              components,
		TotalGrossContractValue: total,
		TrueHourlyRate:          trueRate,
		ShiftsPerWeek:           in.ShiftsPerWeek,
	}
}
