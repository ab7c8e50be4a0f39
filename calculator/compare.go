/*
compare.go - Offer comparison

PURPOSE:
  Evaluates a batch of contract offers and ranks them by true hourly rate,
  highest first. One invalid offer does not fail the batch: its validation
  errors ride along on its entry and it sorts after every computable offer.

ORDERING:
  1. Offers with a defined true rate, descending by rate
  2. Offers whose rate is undefined (computable, zero worked hours)
  3. Offers that failed validation
  Ties and same-class entries keep their submission order.
*/
package calculator

import (
	"sort"

	"github.com/locumtruerate/comp-engine/engine"
)

// Offer is one labeled contract to compare.
type Offer struct {
	Label string
	Form  NormalizedForm
}

// RankedOffer is one comparison row. Result is nil when Errors is set.
type RankedOffer struct {
	Label  string
	Rank   int
	Result *engine.CompensationResult
	Errors engine.FieldErrors
}

// CompareOffers evaluates and ranks a batch of offers.
func CompareOffers(offers []Offer) []RankedOffer {
	ranked := make([]RankedOffer, len(offers))
	for i, offer := range offers {
		result, errs := offer.Form.Evaluate()
		ranked[i] = RankedOffer{
			Label:  offer.Label,
			Result: result,
			Errors: errs,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return offerClass(ranked[i]) < offerClass(ranked[j]) ||
			(offerClass(ranked[i]) == 0 && offerClass(ranked[j]) == 0 &&
				ranked[i].Result.TrueHourlyRate.Value.GreaterThan(ranked[j].Result.TrueHourlyRate.Value))
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// offerClass orders computable-and-defined before undefined before invalid.
func offerClass(r RankedOffer) int {
	switch {
	case r.Errors != nil:
		return 2
	case !r.Result.TrueHourlyRate.Defined:
		return 1
	default:
		return 0
	}
}
