/*
normalized.go - Normalized Calculator view

PURPOSE:
  The superset view: every contract field plus shiftsPerWeek. Built for
  putting dissimilar offers on equal footing via the true hourly rate.
  shiftsPerWeek is captured and displayed but affects no total; inventing
  a calculation for it would silently change figures for users who entered
  it as a note.
*/
package calculator

import (
	"github.com/locumtruerate/comp-engine/engine"
)

// NormalizedForm is the Normalized Calculator page's field set.
type NormalizedForm struct {
	ContractForm

	// ShiftsPerWeek is informational only.
	ShiftsPerWeek string
}

// RawInput extends the contract field set with shiftsPerWeek.
func (f NormalizedForm) RawInput() engine.RawInput {
	raw := f.ContractForm.RawInput()
	if f.ShiftsPerWeek != "" {
		raw[engine.FieldShiftsPerWeek] = f.ShiftsPerWeek
	}
	return raw
}

// Evaluate runs the engine over the form.
func (f NormalizedForm) Evaluate() (*engine.CompensationResult, engine.FieldErrors) {
	return engine.Compute(f.RawInput())
}
