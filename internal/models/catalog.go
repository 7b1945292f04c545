package models

type Service struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	UnitPrice      float64 `json:"unit_price"`
	CategoryID     string  `json:"category_id"`
	ImageURL       string  `json:"image_url,omitempty"`
	Commission     float64 `json:"commission"`
	CommissionType string  `json:"commission_type,omitempty"`
}

type CatalogResponse struct {
	Services []Service `json:"services"`
	// Fallback is true when the remote catalog was unreachable and the
	// built-in default list is being served instead.
	Fallback bool `json:"fallback"`
}

type TermsResponse struct {
	HTML string `json:"html"`
}

type PermissionResponse struct {
	Granted bool `json:"granted"`
}
