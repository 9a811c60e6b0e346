package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"praxis/internal/domain"
	"praxis/internal/repository"
	"praxis/internal/storage"
)

type NewsServiceImpl struct {
	repo        repository.NewsRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
	now         func() time.Time
}

func NewNewsService(repo repository.NewsRepository, fileStorage storage.FileStorage, logger *zap.Logger) *NewsServiceImpl {
	return &NewsServiceImpl{
		repo:        repo,
		fileStorage: fileStorage,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *NewsServiceImpl) Create(ctx context.Context, dto domain.CreateNewsPostDTO) (*domain.NewsPost, error) {
	post := domain.NewsPost{
		Slug:      dto.Slug,
		TitleDe:   dto.TitleDe,
		TitleEn:   dto.TitleEn,
		ContentDe: dto.ContentDe,
		ContentEn: dto.ContentEn,
		Published: dto.Published,
	}

	// The site renders German when no translation exists.
	if post.TitleEn == "" {
		post.TitleEn = post.TitleDe
	}
	if post.ContentEn == "" {
		post.ContentEn = post.ContentDe
	}

	if post.Published {
		publishedAt := s.now()
		post.PublishedAt = &publishedAt
	}

	id, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id

	s.logger.Info("news post created", zap.String("postID", id), zap.String("slug", post.Slug))

	return &post, nil
}

func (s *NewsServiceImpl) GetByID(ctx context.Context, id string) (*domain.NewsPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *NewsServiceImpl) GetPublishedBySlug(ctx context.Context, slug string) (*domain.NewsPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, domain.ErrNotFound
	}
	return post, nil
}

func (s *NewsServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateNewsPostDTO) (*domain.NewsPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil && *dto.Slug != post.Slug {
		exists, err := s.repo.SlugExists(ctx, *dto.Slug, id)
		if err != nil {
			return nil, fmt.Errorf("checking slug: %w", err)
		}
		if exists {
			return nil, domain.ErrSlugTaken
		}
		post.Slug = *dto.Slug
	}
	if dto.TitleDe != nil {
		post.TitleDe = *dto.TitleDe
	}
	if dto.TitleEn != nil {
		post.TitleEn = *dto.TitleEn
	}
	if dto.ContentDe != nil {
		post.ContentDe = *dto.ContentDe
	}
	if dto.ContentEn != nil {
		post.ContentEn = *dto.ContentEn
	}
	if dto.Published != nil {
		if *dto.Published && !post.Published && post.PublishedAt == nil {
			publishedAt := s.now()
			post.PublishedAt = &publishedAt
		}
		post.Published = *dto.Published
	}

	if err := s.repo.Update(ctx, *post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *NewsServiceImpl) UploadImage(ctx context.Context, id string, data []byte, filename string) (string, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if s.fileStorage == nil {
		return "", fmt.Errorf("file storage is not configured")
	}

	url, err := s.fileStorage.UploadFile(ctx, data, filename)
	if err != nil {
		s.logger.Error("news image upload failed", zap.String("postID", id), zap.Error(err))
		return "", fmt.Errorf("uploading image: %w", err)
	}

	if post.ImageURL != nil {
		if err := s.fileStorage.DeleteFile(ctx, *post.ImageURL); err != nil {
			s.logger.Warn("failed to remove previous news image",
				zap.String("postID", id), zap.Error(err))
		}
	}

	if err := s.repo.UpdateImageURL(ctx, id, &url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *NewsServiceImpl) Delete(ctx context.Context, id string) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if post.ImageURL != nil && s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, *post.ImageURL); err != nil {
			s.logger.Warn("failed to remove news image",
				zap.String("postID", id), zap.Error(err))
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *NewsServiceImpl) List(ctx context.Context, publishedOnly bool) ([]domain.NewsPost, error) {
	return s.repo.List(ctx, publishedOnly)
}
