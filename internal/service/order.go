package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"textila-api/internal/apperr"
	"textila-api/internal/dto"
	"textila-api/internal/model"
	"textila-api/internal/repository"
)

type OrderService interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) error
	Cancel(ctx context.Context, id string) error
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

// Create inserts a new order. Status and createdAt are always assigned here;
// whatever the caller sent for them is ignored.
func (s *orderServiceImpl) Create(ctx context.Context, req *dto.CreateOrderRequest) (*model.Order, error) {
	if req.ProductID == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "productId is required")
	}
	if req.Email == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "email is required")
	}
	if req.Quantity <= 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "quantity must be positive")
	}

	order := &model.Order{
		ID:         uuid.NewString(),
		ProductID:  req.ProductID,
		Email:      req.Email,
		Quantity:   req.Quantity,
		OrderTotal: req.OrderTotal,
		Status:     model.OrderPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	slog.Info("order created", "id", order.ID, "product", order.ProductID, "email", order.Email)
	return order, nil
}

func (s *orderServiceImpl) List(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *orderServiceImpl) ListByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	return s.orderRepo.ListByEmail(ctx, email)
}

func (s *orderServiceImpl) Get(ctx context.Context, id string) (*model.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

// UpdateStatus patches status and/or paymentStatus. Status moves through the
// closed transition set only; no other order field is reachable from here.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) error {
	fields := map[string]interface{}{}

	if req.Status != nil {
		next := model.OrderStatus(*req.Status)
		if !next.Valid() {
			return apperr.Newf(apperr.KindInvalidArgument, "unknown order status %q", *req.Status)
		}

		order, err := s.orderRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(next) {
			return apperr.Newf(apperr.KindInvalidArgument, "cannot move order from %s to %s", order.Status, next)
		}

		fields["status"] = next
	}

	if req.PaymentStatus != nil {
		fields["payment_status"] = *req.PaymentStatus
	}

	if len(fields) == 0 {
		return apperr.New(apperr.KindInvalidArgument, "no updatable fields in request")
	}

	return s.orderRepo.Update(ctx, id, fields)
}

func (s *orderServiceImpl) Cancel(ctx context.Context, id string) error {
	return s.orderRepo.Delete(ctx, id)
}
