package cart

import (
	"math"

	"ziplay/models"
)

// Round2 rounds an amount to two decimal places before any further
// arithmetic, so minor-unit conversion cannot drift on float noise.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Total sums price*quantity over the resolved line items, rounded to two
// decimals. No tax, discount, or currency conversion applies.
func Total(items []models.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return Round2(total)
}

// MinorUnits converts a major-unit amount to minor units (paise for INR)
// with explicit rounding.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
