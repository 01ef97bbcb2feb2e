package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"textila-api/internal/apperr"
	"textila-api/internal/dto"
	"textila-api/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	product, err := h.productService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) ListHome(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.ListHome(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.productService.Get(ctx, c.Param("id"))
	if apperr.IsNotFound(err) {
		return c.JSON(http.StatusOK, map[string]string{})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.productService.Update(ctx, c.Param("id"), &req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.productService.Delete(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
