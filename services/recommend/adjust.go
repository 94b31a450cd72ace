package recommend

import (
	"github.com/shopspring/decimal"

	"eventify/models"
)

var envelopeFloor = decimal.NewFromFloat(0.8)

// AdjustPackagePrices rescales a three-slot draft so its total lands in the
// budget envelope. Drafts already inside [0.8*budget, budget] are returned as is.
func AdjustPackagePrices(draft models.PlannerDraft, budget int64) models.PlannerDraft {
	total := DraftTotal(draft)
	if total <= 0 || budget <= 0 {
		return draft
	}

	limit := decimal.NewFromInt(budget)
	sum := decimal.NewFromInt(total)

	var target decimal.Decimal
	switch {
	case sum.LessThan(limit.Mul(envelopeFloor)):
		target = limit.Mul(envelopeFloor)
	case sum.GreaterThan(limit):
		target = limit
	default:
		return draft
	}

	draft.Venue.Price = scalePrice(draft.Venue.Price, target, sum)
	draft.Catering.Price = scalePrice(draft.Catering.Price, target, sum)
	draft.Entertainment.Price = scalePrice(draft.Entertainment.Price, target, sum)
	return draft
}

// DraftTotal sums the numeric prices of the three slots.
func DraftTotal(draft models.PlannerDraft) int64 {
	return ParsePrice(draft.Venue.Price) + ParsePrice(draft.Catering.Price) + ParsePrice(draft.Entertainment.Price)
}

// scalePrice returns price*target/sum rounded half-up. The single division
// keeps exact halves from being truncated below .5.
func scalePrice(price string, target, sum decimal.Decimal) string {
	scaled := decimal.NewFromInt(ParsePrice(price)).Mul(target).Div(sum).Round(0)
	return FormatPrice(scaled.IntPart())
}
