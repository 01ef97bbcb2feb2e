package repository

import (
	"context"

	"gorm.io/gorm"

	"textila-api/internal/model"
)

// TrackingRepository is append-only: steps are never updated or removed, so a
// recorded timeline only ever grows.
type TrackingRepository interface {
	Append(ctx context.Context, step *model.TrackingStep) error
	Timeline(ctx context.Context, orderID string) ([]*model.TrackingStep, error)
}

type trackingRepoImpl struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepoImpl{
		db: db,
	}
}

func (r *trackingRepoImpl) Append(ctx context.Context, step *model.TrackingStep) error {
	return r.db.WithContext(ctx).Create(step).Error
}

func (r *trackingRepoImpl) Timeline(ctx context.Context, orderID string) ([]*model.TrackingStep, error) {
	var steps []*model.TrackingStep
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("timestamp ASC").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}

	return steps, nil
}
