/*
paycheck.go - Paycheck Calculator view

PURPOSE:
  Answers "what will one paycheck look like?" for a given pay period.
  All figures derive from the same contract evaluation; the view scales
  the weekly amounts by the period's week count. Gross only - tax
  withholding is out of scope by design.
*/
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/locumtruerate/comp-engine/engine"
)

// PaycheckForm is the Paycheck Calculator page's field set: the contract
// fields plus the pay period selector.
type PaycheckForm struct {
	ContractForm

	// PayPeriod is daily, weekly, biweekly, or monthly. Blank defaults to
	// weekly.
	PayPeriod string
}

// PaycheckResult is the per-paycheck breakdown. Amounts cover one full pay
// period of working time; the final check of a short contract may cover
// less and is the caller's proration concern.
type PaycheckResult struct {
	Period      engine.PayPeriod
	PeriodWeeks decimal.Decimal

	// Hours of regular + overtime work in one period.
	PeriodHours decimal.Decimal

	BasePay     engine.Money
	OvertimePay engine.Money
	CallPay     engine.Money
	CallbackPay engine.Money

	// Housing, meal, and mileage combined for one period.
	Stipends engine.Money

	// Everything above summed: gross pay for one period.
	GrossPay engine.Money

	// The whole-contract evaluation the paycheck was derived from.
	Contract *engine.CompensationResult
}

// Evaluate computes one paycheck.
func (f PaycheckForm) Evaluate() (*PaycheckResult, engine.FieldErrors) {
	period, err := engine.ParsePayPeriod(f.PayPeriod)
	if err != nil {
		return nil, engine.FieldErrors{{
			Field:   "payPeriod",
			Kind:    engine.KindDomain,
			Message: "must be daily, weekly, biweekly, or monthly",
		}}
	}

	in, errs := engine.Validate(f.RawInput())
	if errs != nil {
		return nil, errs
	}
	contract := engine.Evaluate(in)

	weeks := period.Weeks()

	base := in.BaseHourlyRate.Mul(in.HoursPerWeek).Mul(weeks)
	overtime := in.OvertimeRate.Mul(in.OvertimeHours).Mul(weeks)
	call := in.CallRate.Mul(in.CallHours).Mul(weeks)
	callback := in.CallbackRate.Mul(in.CallbackHours).Mul(weeks)

	stipends := in.HousingStipendWeekly.
		Add(in.MealStipendDaily.Mul(decimal.NewFromInt(7))).
		Add(in.MileageRate().Mul(in.DailyRoundTripMiles)).
		Mul(weeks)

	gross := base.Add(overtime).Add(call).Add(callback).Add(stipends)

	return &PaycheckResult{
		Period:      period,
		PeriodWeeks: weeks,
		PeriodHours: in.HoursPerWeek.Add(in.OvertimeHours).Mul(weeks),
		BasePay:     base,
		OvertimePay: overtime,
		CallPay:     call,
		CallbackPay: callback,
		Stipends:    stipends,
		GrossPay:    gross,
		Contract:    contract,
	}, nil
}
