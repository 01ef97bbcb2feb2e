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

type ProductService interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	ListHome(ctx context.Context) ([]*model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}

type productServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
	}
}

func (s *productServiceImpl) Create(ctx context.Context, req *dto.CreateProductRequest) (*model.Product, error) {
	if req.Name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "product name is required")
	}
	if req.Price < 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "price must not be negative")
	}

	product := &model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		ShowOnHome:  req.ShowOnHome,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productServiceImpl) ListHome(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.ListHome(ctx)
}

func (s *productServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// Update applies the allow-listed fields only, so a patch can never touch the
// identifier or creation timestamp.
func (s *productServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return apperr.New(apperr.KindInvalidArgument, "price must not be negative")
		}
		fields["price"] = *req.Price
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.ShowOnHome != nil {
		fields["show_on_home"] = *req.ShowOnHome
	}

	if len(fields) == 0 {
		return apperr.New(apperr.KindInvalidArgument, "no updatable fields in request")
	}

	return s.productRepo.Update(ctx, id, fields)
}

func (s *productServiceImpl) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
