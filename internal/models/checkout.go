package models

import "github.com/google/uuid"

type CheckoutRequest struct {
	CartID            uuid.UUID `json:"cart_id" validate:"required"`
	Name              string    `json:"name" validate:"required"`
	Phone             string    `json:"phone" validate:"required"`
	Email             string    `json:"email" validate:"required,email"`
	CountryISO        string    `json:"country_iso" validate:"required,iso3166_1_alpha2"`
	DepartmentID      string    `json:"department_id" validate:"required"`
	MunicipalityID    string    `json:"municipality_id" validate:"required"`
	ZoneID            string    `json:"zone_id"`
	Address           string    `json:"address" validate:"required"`
	PaymentMethodID   string    `json:"payment_method_id" validate:"required"`
	Paid              bool      `json:"paid"`
	RequestsQuote     bool      `json:"requests_quote"`
	RequestsOther     bool      `json:"requests_other"`
	OtherDetail       string    `json:"other_detail"`
	InstallationDate  string    `json:"installation_date" validate:"required"`
	TimeSlotLabel     string    `json:"time_slot_label" validate:"required"`
	Comment           string    `json:"comment"`
	AuxiliaryProvider string    `json:"auxiliary_provider"`
}

type CheckoutResponse struct {
	OrderID int64  `json:"order_id,omitempty"`
	Quote   *Quote `json:"quote"`
	// Degraded marks orders accepted through the direct-to-origin fallback,
	// where the backend response body could not be read.
	Degraded bool `json:"degraded,omitempty"`
}
