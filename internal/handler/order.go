package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"textila-api/internal/apperr"
	"textila-api/internal/dto"
	"textila-api/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.orderService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListByEmail(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListByEmail(ctx, c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.Get(ctx, c.Param("id"))
	if apperr.IsNotFound(err) {
		return c.JSON(http.StatusOK, map[string]string{})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.orderService.UpdateStatus(ctx, c.Param("id"), &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orderService.Cancel(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}
