package shipping

import (
	"fmt"

	"antojos/utils"
)

// Subtotal bands and their flat fees. Cost and Message must share these
// constants so the checkout fee never contradicts the incentive copy.
const (
	FreeShippingThreshold    = 100000
	ReducedShippingThreshold = 50000

	FullFee    = 10000
	ReducedFee = 5000
)

// Cost returns the flat shipping fee for a cart subtotal.
func Cost(subtotal int) int {
	if subtotal < ReducedShippingThreshold {
		return FullFee
	}
	if subtotal < FreeShippingThreshold {
		return ReducedFee
	}
	return 0
}

// Message returns the incentive line naming the shortfall to the next
// tier, or "" once shipping is free.
func Message(subtotal int) string {
	if subtotal < ReducedShippingThreshold {
		diff := ReducedShippingThreshold - subtotal
		return fmt.Sprintf("¡Estás cerca! Solo %s más y tu pedido tendrá envío por solo 5.000 COP.",
			utils.FormatCOP(diff))
	}
	if subtotal < FreeShippingThreshold {
		diff := FreeShippingThreshold - subtotal
		return fmt.Sprintf("¡Casi llegas! Agrega %s más para disfrutar de envío gratis en tu pedido.",
			utils.FormatCOP(diff))
	}
	return ""
}
