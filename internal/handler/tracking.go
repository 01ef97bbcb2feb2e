package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"textila-api/internal/dto"
	"textila-api/internal/service"
)

type TrackingHandler struct {
	trackingService service.TrackingService
}

func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

func (h *TrackingHandler) Append(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AppendTrackingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	step, err := h.trackingService.Append(ctx, c.Param("orderId"), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, step)
}

func (h *TrackingHandler) Timeline(c echo.Context) error {
	ctx := c.Request().Context()

	steps, err := h.trackingService.Timeline(ctx, c.Param("orderId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, steps)
}
