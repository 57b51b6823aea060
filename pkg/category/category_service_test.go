package category

import (
	"context"
	"testing"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryCategoryRepository struct {
	categories []*entities.Category
}

func (r *memoryCategoryRepository) GetCategories(_ context.Context) ([]*entities.Category, error) {
	return r.categories, nil
}

func (r *memoryCategoryRepository) GetCategoryByID(_ context.Context, id string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.ID.String() == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryCategoryRepository) GetCategoryByLabels(_ context.Context, majorName, subName string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.MajorName == majorName && c.SubName == subName {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryCategoryRepository) GetFirstCategory(_ context.Context) (*entities.Category, error) {
	if len(r.categories) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.categories[0], nil
}

func seededRepository() *memoryCategoryRepository {
	return &memoryCategoryRepository{categories: []*entities.Category{
		{ID: uuid.New(), MajorName: "동물성 식재료", SubName: "육류", SortOrder: 1},
		{ID: uuid.New(), MajorName: "동물성 식재료", SubName: "유제품", SortOrder: 2},
		{ID: uuid.New(), MajorName: "식물성 식재료", SubName: "채소", SortOrder: 3},
	}}
}

func TestGetCategories(t *testing.T) {
	service := NewCategoryService(seededRepository())

	categories, err := service.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "동물성 식재료", categories[0].MajorName)
	assert.Equal(t, "육류", categories[0].SubName)
}

func TestResolveLabelsExactMatch(t *testing.T) {
	repo := seededRepository()
	service := NewCategoryService(repo)

	res, err := service.ResolveLabels(context.Background(), "식물성 식재료", "채소")
	require.NoError(t, err)
	assert.True(t, res.Resolved)
	assert.Equal(t, repo.categories[2].ID, res.Category.ID)
}

func TestResolveLabelsFallsBackToFirstCategory(t *testing.T) {
	repo := seededRepository()
	service := NewCategoryService(repo)

	res, err := service.ResolveLabels(context.Background(), "없는 대분류", "없는 소분류")
	require.NoError(t, err)
	assert.False(t, res.Resolved)
	assert.Equal(t, repo.categories[0].ID, res.Category.ID)
}

func TestResolveLabelsEmptyDirectory(t *testing.T) {
	service := NewCategoryService(&memoryCategoryRepository{})

	_, err := service.ResolveLabels(context.Background(), "동물성 식재료", "육류")
	assert.ErrorIs(t, err, domain.ErrNoCategories)
}
