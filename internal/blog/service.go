// AngelaMos | 2026
// service.go

package blog

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

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

func (s *Service) List(ctx context.Context) ([]BlogPost, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateBlogPostRequest,
) (*BlogPost, error) {
	post := &BlogPost{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Author:   req.Author,
		Date:     req.Date,
		Category: req.Category,
		ReadTime: req.ReadTime,
		Image:    req.Image,
	}

	if post.Author == "" {
		post.Author = "Agrovia Exports"
	}
	if post.Date == "" {
		post.Date = time.Now().Format("January 2, 2006")
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateBlogPostRequest,
) (*BlogPost, error) {
	fields := bson.M{}

	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.Date != nil {
		fields["date"] = *req.Date
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ReadTime != nil {
		fields["readTime"] = *req.ReadTime
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	return s.repo.Update(ctx, id, fields)
}

// Delete removes the post, then attempts image cleanup. The document
// delete is authoritative; a failed file removal is only logged.
func (s *Service) Delete(ctx context.Context, id string) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if post.Image != "" {
		if _, err := s.assets.Delete(post.Image); err != nil {
			s.logger.Warn("blog post image cleanup failed",
				"post_id", id,
				"path", post.Image,
				"error", err,
			)
		}
	}

	return nil
}
