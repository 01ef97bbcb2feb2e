package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"textila-api/internal/dto"
	"textila-api/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	url, err := h.paymentService.CreateCheckoutSession(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.CheckoutResponse{
		URL: url,
	})
}

func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.paymentService.ConfirmPayment(ctx, req.SessionID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
