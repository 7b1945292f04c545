package pricing

import (
	"github.com/hogarfix/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

// Quote aggregates line items, applicable discounts and the zone surcharge
// into a payable total. Discounts stay a collection even though bundle
// pricing is the only source today; the total never goes below zero.
func Quote(items []models.CartItem, surcharge float64) *models.Quote {
	subtotal := decimal.Zero

	for _, item := range items {
		lineTotal := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}

	var discounts []models.AppliedDiscount

	discountTotal := decimal.Zero

	if d := BundleDiscount(items); d != nil {
		discounts = append(discounts, *d)
		discountTotal = discountTotal.Add(decimal.NewFromFloat(d.Amount))
	}

	total := subtotal.Sub(discountTotal).Add(decimal.NewFromFloat(surcharge))
	if total.IsNegative() {
		total = decimal.Zero
	}

	subtotalF, _ := subtotal.Float64()
	totalF, _ := total.Float64()

	return &models.Quote{
		Subtotal:     subtotalF,
		Discounts:    discounts,
		Surcharge:    surcharge,
		Total:        totalF,
		TotalDisplay: FormatPrice(totalF),
	}
}
