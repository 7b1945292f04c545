package checkout

import (
	"github.com/hogarfix/storefront-api/internal/models"
	"github.com/hogarfix/storefront-api/pkg/marketplace"
)

// DefaultCurrencyID is the backend's identifier for the store currency.
const DefaultCurrencyID = "1"

// BuildOrderPayload maps the customer-entered checkout fields and the cart
// contents into the request body the order-creation endpoint expects.
func BuildOrderPayload(req *models.CheckoutRequest, cart *models.Cart) *marketplace.OrderPayload {
	zoneID := req.ZoneID
	if zoneID == "" {
		zoneID = cart.ZoneID
	}

	items := make([]marketplace.OrderItem, 0, len(cart.Items))

	for _, item := range cart.ItemList() {
		items = append(items, marketplace.OrderItem{
			CategoryID:     item.CategoryID,
			ProductID:      item.ProductID,
			DetailID:       item.DetailID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Currency:       DefaultCurrencyID,
			Commission:     item.Commission,
			CommissionType: item.CommissionType,
			// No per-item adjustment applies today; bundle discounts are
			// cart-level and the backend recomputes them.
			FinalPrice: item.UnitPrice,
		})
	}

	return &marketplace.OrderPayload{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		CountryISO:        req.CountryISO,
		DepartmentID:      req.DepartmentID,
		MunicipalityID:    req.MunicipalityID,
		ZoneID:            zoneID,
		Address:           req.Address,
		PaymentMethodID:   req.PaymentMethodID,
		Paid:              req.Paid,
		RequestsQuote:     req.RequestsQuote,
		RequestsOther:     req.RequestsOther,
		OtherDetail:       req.OtherDetail,
		InstallationDate:  req.InstallationDate,
		TimeSlot:          TimeSlotCode(req.TimeSlotLabel),
		Comment:           req.Comment,
		AuxiliaryProvider: req.AuxiliaryProvider,
		Items:             items,
	}
}
