package service

import (
	"context"
	"errors"

	"ecoconnect/internal/models"
	"ecoconnect/internal/repository"
	"ecoconnect/internal/validation"

	"gorm.io/gorm"
)

// TaxonomyService covers categories and tags, which share the same shape of
// operations: list, look up by slug, create.
type TaxonomyService struct {
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

func NewTaxonomyService(categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository) *TaxonomyService {
	return &TaxonomyService{categoryRepo: categoryRepo, tagRepo: tagRepo}
}

func (s *TaxonomyService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *TaxonomyService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Category not found")
	}
	return category, err
}

func (s *TaxonomyService) CreateCategory(ctx context.Context, in validation.InsertCategory) (*models.Category, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewValidationError("Invalid category data", fields...)
	}
	category := &models.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Color:       in.Color,
		Description: in.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *TaxonomyService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *TaxonomyService) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Tag not found")
	}
	return tag, err
}

func (s *TaxonomyService) CreateTag(ctx context.Context, in validation.InsertTag) (*models.Tag, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, models.NewValidationError("Invalid tag data", fields...)
	}
	tag := &models.Tag{
		Name:  in.Name,
		Slug:  in.Slug,
		Color: in.Color,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}
