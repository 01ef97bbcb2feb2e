package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"textila-api/internal/apperr"
	"textila-api/internal/dto"
	"textila-api/internal/model"
	"textila-api/internal/repository"
)

type TrackingService interface {
	Append(ctx context.Context, orderID string, req *dto.AppendTrackingRequest) (*model.TrackingStep, error)
	Timeline(ctx context.Context, orderID string) ([]*model.TrackingStep, error)
}

type trackingServiceImpl struct {
	trackingRepo repository.TrackingRepository
}

func NewTrackingService(
	trackingRepo repository.TrackingRepository,
) TrackingService {
	return &trackingServiceImpl{
		trackingRepo: trackingRepo,
	}
}

func (s *trackingServiceImpl) Append(ctx context.Context, orderID string, req *dto.AppendTrackingRequest) (*model.TrackingStep, error) {
	if orderID == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "orderId is required")
	}
	if req.Stage == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "stage is required")
	}

	step := &model.TrackingStep{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Stage:     req.Stage,
		Location:  req.Location,
		Note:      req.Note,
		Timestamp: time.Now().UTC(),
	}

	if err := s.trackingRepo.Append(ctx, step); err != nil {
		return nil, err
	}

	return step, nil
}

func (s *trackingServiceImpl) Timeline(ctx context.Context, orderID string) ([]*model.TrackingStep, error) {
	return s.trackingRepo.Timeline(ctx, orderID)
}
