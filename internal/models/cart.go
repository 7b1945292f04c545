package models

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	Quantity       int     `json:"quantity"`
	CategoryID     string  `json:"category_id"`
	ImageURL       string  `json:"image_url,omitempty"`
	ProductID      *string `json:"product_id,omitempty"`
	DetailID       *string `json:"detail_id,omitempty"`
	Commission     float64 `json:"commission"`
	CommissionType string  `json:"commission_type,omitempty"`
}

// Cart is a single checkout session. The zone surcharge lives on the
// session itself, so a new cart always starts with a clean surcharge.
type Cart struct {
	ID            uuid.UUID           `json:"id"`
	Items         map[string]CartItem `json:"items"`
	ZoneID        string              `json:"zone_id,omitempty"`
	ZoneSurcharge float64             `json:"zone_surcharge"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ItemList returns the cart items as a slice for pricing.
func (c *Cart) ItemList() []CartItem {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, item)
	}

	return items
}

type AddItemRequest struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	UnitPrice      float64 `json:"unit_price" validate:"gte=0"`
	Quantity       int     `json:"quantity" validate:"required,min=1"`
	CategoryID     string  `json:"category_id" validate:"required"`
	ImageURL       string  `json:"image_url"`
	ProductID      *string `json:"product_id"`
	DetailID       *string `json:"detail_id"`
	Commission     float64 `json:"commission" validate:"gte=0"`
	CommissionType string  `json:"commission_type"`
}

type UpdateQuantityRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type SetZoneRequest struct {
	ZoneID    string  `json:"zone_id" validate:"required"`
	Surcharge float64 `json:"surcharge" validate:"gte=0"`
}

// AppliedDiscount is one discount applied to the cart. The aggregator keeps
// these as a collection even though bundle pricing is the only source today.
type AppliedDiscount struct {
	Percentage  int     `json:"percentage"`
	Amount      float64 `json:"amount"`
	ItemCount   int     `json:"item_count"`
	Description string  `json:"description"`
}

type Quote struct {
	Subtotal  float64           `json:"subtotal"`
	Discounts []AppliedDiscount `json:"discounts,omitempty"`
	Surcharge float64           `json:"surcharge"`
	Total     float64           `json:"total"`
	// TotalDisplay is the total formatted for the storefront locale,
	// e.g. "1.234,56". Order payloads always carry the raw number.
	TotalDisplay string `json:"total_display"`
}

type CartResponse struct {
	Cart  *Cart  `json:"cart"`
	Quote *Quote `json:"quote"`
}
