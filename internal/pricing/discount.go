package pricing

import (
	"fmt"

	"github.com/hogarfix/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

// BundleCategoryID is the only category whose items count towards the
// tiered bundle discount.
const BundleCategoryID = "1"

type DiscountTier struct {
	MinItems   int
	Percentage int
}

// Tiers ordered by ascending threshold; the highest qualifying one wins.
var bundleTiers = []DiscountTier{
	{MinItems: 3, Percentage: 10},
	{MinItems: 5, Percentage: 15},
	{MinItems: 10, Percentage: 20},
}

var oneHundred = decimal.NewFromInt(100)

// BundleDiscount computes the tiered discount for the eligible category.
// It returns nil when fewer than the minimum qualifying units are in the
// cart, not a zero-valued result. The function is pure: it is recomputed
// on every cart mutation and never cached.
func BundleDiscount(items []models.CartItem) *models.AppliedDiscount {
	var count int

	eligible := decimal.Zero

	for _, item := range items {
		if item.CategoryID != BundleCategoryID {
			continue
		}

		count += item.Quantity
		lineTotal := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		eligible = eligible.Add(lineTotal)
	}

	if count < bundleTiers[0].MinItems {
		return nil
	}

	tier := bundleTiers[0]

	for _, t := range bundleTiers {
		if count >= t.MinItems {
			tier = t
		}
	}

	// Rounded half-up to the nearest integer currency unit.
	amount := eligible.Mul(decimal.NewFromInt(int64(tier.Percentage))).Div(oneHundred).Round(0)
	if amount.GreaterThan(eligible) {
		amount = eligible
	}

	amountF, _ := amount.Float64()

	return &models.AppliedDiscount{
		Percentage:  tier.Percentage,
		Amount:      amountF,
		ItemCount:   count,
		Description: fmt.Sprintf("%d%% de descuento por %d o más servicios", tier.Percentage, tier.MinItems),
	}
}
