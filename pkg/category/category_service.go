package category

import (
	"context"
	"errors"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		ResolveLabels(ctx context.Context, majorName, subName string) (Resolution, error)
	}

	// Resolution is the outcome of mapping a (major, sub) label pair to a
	// category. Resolved is false when no category matched the labels and
	// Category is the directory's fallback (first) entry instead.
	Resolution struct {
		Category *entities.Category
		Resolved bool
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, domain.CategoryResponse{
			CategoryID: category.ID.String(),
			MajorName:  category.MajorName,
			SubName:    category.SubName,
		})
	}
	return response, nil
}

func (s *categoryService) ResolveLabels(ctx context.Context, majorName, subName string) (Resolution, error) {
	category, err := s.categoryRepository.GetCategoryByLabels(ctx, majorName, subName)
	if err == nil {
		return Resolution{Category: category, Resolved: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Resolution{}, err
	}

	fallback, err := s.categoryRepository.GetFirstCategory(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Resolution{}, domain.ErrNoCategories
		}
		return Resolution{}, err
	}
	return Resolution{Category: fallback, Resolved: false}, nil
}
