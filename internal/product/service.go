// AngelaMos | 2026
// service.go

package product

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
)

// AssetDeleter removes an uploaded file by its public path. The bool
// reports whether a file was actually removed.
type AssetDeleter interface {
	Delete(path string) (bool, error)
}

type Service struct {
	repo   Repository
	assets AssetDeleter
	logger *slog.Logger
}

func NewService(repo Repository, assets AssetDeleter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		assets: assets,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProductRequest,
) (*Product, error) {
	product := &Product{
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Specifications: req.Specifications,
		Image:          req.Image,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateProductRequest,
) (*Product, error) {
	fields := bson.M{}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Specifications != nil {
		fields["specifications"] = *req.Specifications
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	return s.repo.Update(ctx, id, fields)
}

// Delete removes the document, then makes a best-effort attempt at the
// associated image file. The document is authoritative: an asset
// cleanup failure is logged and never rolls back or fails the delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if product.Image != "" {
		if _, err := s.assets.Delete(product.Image); err != nil {
			s.logger.Warn("product image cleanup failed",
				"product_id", id,
				"path", product.Image,
				"error", err,
			)
		}
	}

	return nil
}
