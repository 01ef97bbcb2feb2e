package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"textila-api/internal/apperr"
	"textila-api/internal/dto"
	"textila-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	user, existed, err := h.userService.Register(ctx, &req)
	if err != nil {
		return err
	}

	if existed {
		return c.JSON(http.StatusOK, &dto.RegisterUserResponse{
			Message: "User already exists",
		})
	}

	return c.JSON(http.StatusCreated, &dto.RegisterUserResponse{
		InsertedID: user.ID,
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ChangeRole(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var req dto.ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.userService.ChangeRole(ctx, id, req.Role); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *UserHandler) Approve(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.userService.Approve(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "approved"})
}

func (h *UserHandler) Suspend(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SuspendUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.userService.Suspend(ctx, c.Param("id"), req.SuspendReason); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "suspended"})
}

// RoleByEmail keeps the original lookup contract: an unknown email answers an
// empty object, not a 404.
func (h *UserHandler) RoleByEmail(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.userService.GetByEmail(ctx, c.Param("email"))
	if apperr.IsNotFound(err) {
		return c.JSON(http.StatusOK, map[string]string{})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"role":   string(user.Role),
		"status": string(user.Status),
	})
}
