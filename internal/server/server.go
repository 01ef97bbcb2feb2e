package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"textila-api/internal/apperr"
	"textila-api/internal/handler"
	"textila-api/internal/middleware"
	"textila-api/internal/model"
	"textila-api/internal/service"
)

type Server struct {
	echo            *echo.Echo
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	trackingHandler *handler.TrackingHandler
	jwtSecret       string
}

func NewServer(
	userService service.UserService,
	productService service.ProductService,
	orderService service.OrderService,
	paymentService service.PaymentService,
	trackingService service.TrackingService,
	jwtSecret string,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"err", v.Error,
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:            e,
		userHandler:     handler.NewUserHandler(userService),
		productHandler:  handler.NewProductHandler(productService),
		orderHandler:    handler.NewOrderHandler(orderService),
		paymentHandler:  handler.NewPaymentHandler(paymentService),
		trackingHandler: handler.NewTrackingHandler(trackingService),
		jwtSecret:       jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	authed := middleware.Authenticate(s.jwtSecret)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	managerUp := middleware.RequireRole(model.RoleManager, model.RoleAdmin)

	// -------- users --------
	api.POST("/users", s.userHandler.Register) // registration is open; auth lives client-side
	api.GET("/users", s.userHandler.ListUsers, authed, adminOnly)
	api.PATCH("/users/:id/role", s.userHandler.ChangeRole, authed, adminOnly)
	api.PATCH("/users/:id/approve", s.userHandler.Approve, authed, adminOnly)
	api.PATCH("/users/:id/suspend", s.userHandler.Suspend, authed, adminOnly)
	api.GET("/users/role/:email", s.userHandler.RoleByEmail, authed)

	// -------- products --------
	api.POST("/products", s.productHandler.Create, authed, managerUp)
	api.GET("/products", s.productHandler.List)
	api.GET("/products/home", s.productHandler.ListHome)
	api.GET("/products/:id", s.productHandler.Get)
	api.PATCH("/products/:id", s.productHandler.Update, authed, managerUp)
	api.DELETE("/products/:id", s.productHandler.Delete, authed, managerUp)

	// -------- orders --------
	api.POST("/orders", s.orderHandler.Create, authed)
	api.GET("/orders", s.orderHandler.List, authed, adminOnly)
	api.GET("/orders/user/:email", s.orderHandler.ListByEmail, authed)
	api.GET("/orders/:id", s.orderHandler.Get, authed)
	api.PATCH("/orders/:id/status", s.orderHandler.UpdateStatus, authed, managerUp)
	api.DELETE("/orders/:id", s.orderHandler.Cancel, authed)

	// -------- payment --------
	api.POST("/payment-checkout-session", s.paymentHandler.CreateCheckoutSession, authed)
	api.POST("/orders/confirm-payment", s.paymentHandler.ConfirmPayment, authed)

	// -------- tracking --------
	api.POST("/tracking/:orderId", s.trackingHandler.Append, authed, managerUp)
	api.GET("/tracking/:orderId", s.trackingHandler.Timeline, authed)
}

// httpErrorHandler maps classified errors onto transport statuses so handlers
// can return service errors untouched.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		_ = c.JSON(he.Code, map[string]interface{}{"error": he.Message})
		return
	}

	var status int
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindInvalidArgument:
		status = http.StatusBadRequest
	case apperr.KindUnprocessable:
		status = http.StatusUnprocessableEntity
	case apperr.KindUpstream:
		status = http.StatusBadGateway
	default:
		slog.Error("unhandled request error", "err", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	var ae *apperr.Error
	errors.As(err, &ae)
	_ = c.JSON(status, map[string]string{"error": ae.Msg})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
