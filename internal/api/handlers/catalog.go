package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hogarfix/storefront-api/internal/api/middleware"
	service "github.com/hogarfix/storefront-api/internal/services"
	"github.com/hogarfix/storefront-api/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: service}
}

func (h *CatalogHandler) ListServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		catalog, err := h.catalogService.ListServices(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		if catalog.Fallback {
			logger.Warn("Serving built-in catalog", slog.Int("services", len(catalog.Services)))
		}

		response.Success(w, http.StatusOK, catalog)
	}
}

func (h *CatalogHandler) GetTerms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terms, err := h.catalogService.GetTerms(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, terms)
	}
}

// CheckCategoryPermission reads the category path as nivel0..nivel3 query
// parameters, matching the names the marketplace backend uses.
func (h *CatalogHandler) CheckCategoryPermission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		permission, err := h.catalogService.CheckCategoryPermission(
			r.Context(),
			query.Get("nivel0"),
			query.Get("nivel1"),
			query.Get("nivel2"),
			query.Get("nivel3"),
		)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, permission)
	}
}
