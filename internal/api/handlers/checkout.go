package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hogarfix/storefront-api/internal/api/middleware"
	"github.com/hogarfix/storefront-api/internal/models"
	service "github.com/hogarfix/storefront-api/internal/services"
	"github.com/hogarfix/storefront-api/internal/utils"
	"github.com/hogarfix/storefront-api/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(service service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: service,
		validator:       validator.New(),
	}
}

func (h *CheckoutHandler) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.checkoutService.SubmitOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Order submission failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order submitted",
			slog.Int64("order_id", order.OrderID),
			slog.Bool("degraded", order.Degraded),
		)
		response.Success(w, http.StatusCreated, order)
	}
}
