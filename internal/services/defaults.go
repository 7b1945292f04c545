package service

import "github.com/hogarfix/storefront-api/internal/models"

// defaultServices keeps the storefront usable when the remote catalog is
// unreachable.
var defaultServices = []models.Service{
	{ID: "1", Name: "Instalación de aire acondicionado", UnitPrice: 1900, CategoryID: "1", ImageURL: "/img/servicios/aire.jpg"},
	{ID: "2", Name: "Mantenimiento y limpieza de equipos", UnitPrice: 1500, CategoryID: "1", ImageURL: "/img/servicios/mantenimiento.jpg"},
	{ID: "3", Name: "Carga de gas refrigerante", UnitPrice: 2200, CategoryID: "1", ImageURL: "/img/servicios/gas.jpg"},
	{ID: "4", Name: "Instalación eléctrica", UnitPrice: 2500, CategoryID: "2", ImageURL: "/img/servicios/electrica.jpg"},
	{ID: "5", Name: "Sanitaria y fontanería", UnitPrice: 1800, CategoryID: "3", ImageURL: "/img/servicios/sanitaria.jpg"},
}

func DefaultServices() []models.Service {
	services := make([]models.Service, len(defaultServices))
	copy(services, defaultServices)

	return services
}
