package marketplace

// ServiceCard is one catalog entry as the backend ships it.
type ServiceCard struct {
	ID             string  `json:"TarjetasServiciosId"`
	Title          string  `json:"Titulo"`
	Description    string  `json:"Descripcion"`
	Price          float64 `json:"Precio"`
	CategoryID     string  `json:"Rubrosid"`
	ImageURL       string  `json:"Imagen"`
	Commission     float64 `json:"Comision"`
	CommissionType string  `json:"ComisionTipo"`
}

type PermissionQuery struct {
	CommerceID string
	Level0     string
	Level1     string
	Level2     string
	Level3     string
}

// OrderItem is one line of the order-creation payload. Product and detail
// identifiers are nullable on the wire.
type OrderItem struct {
	CategoryID     string  `json:"Rubrosid"`
	ProductID      *string `json:"ProductosId"`
	DetailID       *string `json:"DetalleProductoId"`
	Quantity       int     `json:"Cantidad"`
	UnitPrice      float64 `json:"Precio"`
	Currency       string  `json:"Moneda"`
	Commission     float64 `json:"Comision"`
	CommissionType string  `json:"ComisionTipo"`
	FinalPrice     float64 `json:"PrecioFinal"`
}

// OrderPayload is the exact request body of the order-creation endpoint.
type OrderPayload struct {
	Name              string      `json:"Nombre"`
	Phone             string      `json:"Telefono"`
	Email             string      `json:"Mail"`
	CountryISO        string      `json:"PaisISO"`
	DepartmentID      string      `json:"DepartamentoId"`
	MunicipalityID    string      `json:"MunicipioId"`
	ZoneID            string      `json:"ZonasID"`
	Address           string      `json:"Direccion"`
	PaymentMethodID   string      `json:"MetodoPagosID"`
	Paid              bool        `json:"SolicitudPagada"`
	RequestsQuote     bool        `json:"SolicitaCotizacion"`
	RequestsOther     bool        `json:"SolicitaOtroServicio"`
	OtherDetail       string      `json:"OtroServicioDetalle"`
	InstallationDate  string      `json:"FechaInstalacion"`
	TimeSlot          string      `json:"TurnoInstalacion"`
	Comment           string      `json:"Comentario"`
	AuxiliaryProvider string      `json:"ProveedorAuxiliar"`
	Items             []OrderItem `json:"items"`
}

type OrderResult struct {
	ID int64 `json:"SolicitudesID"`
	// Degraded marks an order that could only be confirmed through the
	// direct-to-origin fallback, whose response body is unreadable.
	Degraded bool `json:"-"`
}
