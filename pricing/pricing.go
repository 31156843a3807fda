package pricing

import "math"

// DiscountPercent returns the percentage off between the list price and
// the price actually charged, rounded to the nearest integer. It is 0
// whenever there is no real discount (final >= original) or the original
// price is missing.
func DiscountPercent(original, final int) int {
	if original <= 0 || final >= original {
		return 0
	}
	return int(math.Round(float64(original-final) / float64(original) * 100))
}

// Profit is the margin on a single unit. The final price takes precedence
// over the original when both are set; a product with neither prices at 0.
// A negative result is informational only, the admin UI styles it red.
func Profit(final, original, purchase int) int {
	price := final
	if price == 0 {
		price = original
	}
	return price - purchase
}
