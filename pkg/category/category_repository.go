package category

import (
	"context"

	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategoryByLabels(ctx context.Context, majorName, subName string) (*entities.Category, error)
		GetFirstCategory(ctx context.Context) (*entities.Category, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("sort_order asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoryByLabels(ctx context.Context, majorName, subName string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).
		Where("major_name = ? AND sub_name = ?", majorName, subName).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetFirstCategory(ctx context.Context) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Order("sort_order asc").First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
