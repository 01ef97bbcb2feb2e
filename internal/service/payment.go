package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"textila-api/internal/apperr"
	"textila-api/internal/client"
	"textila-api/internal/dto"
	"textila-api/internal/model"
	"textila-api/internal/repository"
)

const checkoutCurrency = "usd"

// Session metadata keys. The order is rebuilt from these on confirmation, so
// both sides must agree on the names.
const (
	metaProductID = "productId"
	metaQuantity  = "quantity"
	metaEmail     = "email"
)

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req *dto.CheckoutRequest) (string, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*model.Order, error)
}

type paymentServiceImpl struct {
	stripeClient   client.StripeClient
	serviceBaseUrl string
	orderRepo      repository.OrderRepository
}

func NewPaymentService(
	stripeClient client.StripeClient,
	serviceBaseUrl string,
	orderRepo repository.OrderRepository,
) PaymentService {
	return &paymentServiceImpl{
		stripeClient:   stripeClient,
		serviceBaseUrl: serviceBaseUrl,
		orderRepo:      orderRepo,
	}
}

// CreateCheckoutSession opens a remote checkout session for a single product
// and returns its redirect URL. Nothing is persisted locally; an abandoned
// session simply expires on the provider side.
func (s *paymentServiceImpl) CreateCheckoutSession(ctx context.Context, req *dto.CheckoutRequest) (string, error) {
	if req.ProductID == "" || req.Email == "" {
		return "", apperr.New(apperr.KindInvalidArgument, "productId and email are required")
	}
	if req.Quantity <= 0 {
		return "", apperr.New(apperr.KindInvalidArgument, "quantity must be positive")
	}
	if req.Price <= 0 {
		return "", apperr.New(apperr.KindInvalidArgument, "price must be positive")
	}

	// round(price * 100): decimal keeps 19.99 from becoming 1998.
	unitAmount := decimal.NewFromFloat(req.Price).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	session, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CheckoutSessionParams{
		ProductName:   req.ProductName,
		UnitAmount:    unitAmount,
		Quantity:      int64(req.Quantity),
		Currency:      checkoutCurrency,
		CustomerEmail: req.Email,
		SuccessURL:    fmt.Sprintf("%s/payment-success?session_id={CHECKOUT_SESSION_ID}", s.serviceBaseUrl),
		CancelURL:     fmt.Sprintf("%s/payment-cancelled", s.serviceBaseUrl),
		Metadata: map[string]string{
			metaProductID: req.ProductID,
			metaQuantity:  strconv.Itoa(req.Quantity),
			metaEmail:     req.Email,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	slog.Info("checkout session created", "session", session.ID, "product", req.ProductID, "amount_minor", unitAmount)
	return session.URL, nil
}

// ConfirmPayment materializes a paid session into an order. The session id is
// the idempotency key: a session that already produced an order returns that
// order and writes nothing.
func (s *paymentServiceImpl) ConfirmPayment(ctx context.Context, sessionID string) (*model.Order, error) {
	if sessionID == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "sessionId is required")
	}

	existing, err := s.orderRepo.FindBySessionID(ctx, sessionID)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("look up order by session: %w", err)
	}

	session, err := s.stripeClient.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	if session.PaymentStatus != "paid" {
		return nil, apperr.New(apperr.KindUnprocessable, "payment not completed")
	}

	quantity, err := strconv.Atoi(session.Metadata[metaQuantity])
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "checkout session has malformed quantity metadata", err)
	}

	email := session.Metadata[metaEmail]
	if email == "" {
		email = session.CustomerEmail
	}

	// amount_total is minor units; divide back out for the stored total.
	orderTotal := decimal.NewFromInt(session.AmountTotal).
		Div(decimal.NewFromInt(100)).
		InexactFloat64()

	order := &model.Order{
		ID:                uuid.NewString(),
		ProductID:         session.Metadata[metaProductID],
		Email:             email,
		Quantity:          quantity,
		OrderTotal:        orderTotal,
		Status:            model.OrderPending,
		PaymentStatus:     model.PaymentStatusPaid,
		CheckoutSessionID: &session.ID,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Lost a race with a concurrent confirmation of the same session;
		// the unique index on checkout_session_id guarantees a single winner.
		if apperr.IsConflict(err) {
			return s.orderRepo.FindBySessionID(ctx, sessionID)
		}
		return nil, fmt.Errorf("create paid order: %w", err)
	}

	slog.Info("paid order created", "order", order.ID, "session", sessionID, "total", orderTotal)
	return order, nil
}
