package ocr

import (
	"context"
	"testing"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/category"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItemRepository struct {
	saved []*entities.Item
}

func (r *fakeItemRepository) AddItem(_ context.Context, item *entities.Item) error {
	r.saved = append(r.saved, item)
	return nil
}

func (r *fakeItemRepository) AddItems(_ context.Context, items []*entities.Item) error {
	r.saved = append(r.saved, items...)
	return nil
}

func (r *fakeItemRepository) GetItemByID(_ context.Context, _ string) (*entities.Item, error) {
	return nil, nil
}

func (r *fakeItemRepository) UpdateItem(_ context.Context, _ *entities.Item) error {
	return nil
}

func (r *fakeItemRepository) DeleteItems(_ context.Context, _ string, ids []string) (int64, error) {
	return int64(len(ids)), nil
}

func (r *fakeItemRepository) GetItems(_ context.Context, _ string) ([]*entities.Item, error) {
	return r.saved, nil
}

func (r *fakeItemRepository) GetItemsExpiringBetween(_ context.Context, _, _ time.Time) ([]*entities.Item, error) {
	return nil, nil
}

// fakeCategoryService resolves only the pairs listed in known; everything
// else falls back to the first known category, unresolved.
type fakeCategoryService struct {
	known []*entities.Category
}

func (s *fakeCategoryService) GetCategories(_ context.Context) ([]domain.CategoryResponse, error) {
	response := make([]domain.CategoryResponse, 0, len(s.known))
	for _, c := range s.known {
		response = append(response, domain.CategoryResponse{
			CategoryID: c.ID.String(),
			MajorName:  c.MajorName,
			SubName:    c.SubName,
		})
	}
	return response, nil
}

func (s *fakeCategoryService) ResolveLabels(_ context.Context, majorName, subName string) (category.Resolution, error) {
	for _, c := range s.known {
		if c.MajorName == majorName && c.SubName == subName {
			return category.Resolution{Category: c, Resolved: true}, nil
		}
	}
	if len(s.known) == 0 {
		return category.Resolution{}, domain.ErrNoCategories
	}
	return category.Resolution{Category: s.known[0], Resolved: false}, nil
}

func newFakeCategoryService() *fakeCategoryService {
	return &fakeCategoryService{known: []*entities.Category{
		{ID: uuid.New(), MajorName: "동물성 식재료", SubName: "유제품"},
		{ID: uuid.New(), MajorName: "식물성 식재료", SubName: "채소"},
	}}
}

func TestSaveItemsPersistsReviewedBatch(t *testing.T) {
	itemRepo := &fakeItemRepository{}
	service := NewOcrService(itemRepo, newFakeCategoryService(), nil)

	userID := uuid.New().String()

	// The scan recognized three names but the user removed one before
	// confirming, so only two records arrive.
	res, err := service.SaveItems(context.Background(), domain.SaveItemsRequest{
		UserID:   userID,
		ImageURL: "https://bucket.s3.ap-northeast-2.amazonaws.com/scans/scan-1.jpg",
		Items: []domain.SaveScannedItem{
			{ItemName: "우유", MajorName: "동물성 식재료", SubName: "유제품", ExpiryText: "7일"},
			{ItemName: "상추", MajorName: "식물성 식재료", SubName: "채소", ExpiryText: "3일"},
		},
	}, userID)
	require.NoError(t, err)

	assert.Len(t, res.SavedItems, 2)
	assert.Empty(t, res.UnresolvedNames)
	require.Len(t, itemRepo.saved, 2)
	assert.Equal(t, "우유", itemRepo.saved[0].Name)
	assert.Equal(t, userID, itemRepo.saved[0].UserID.String())
	require.NotNil(t, itemRepo.saved[0].ExpiryDate)
	require.NotNil(t, itemRepo.saved[1].ExpiryDate)
	assert.True(t, itemRepo.saved[0].ExpiryDate.After(*itemRepo.saved[1].ExpiryDate))

	// Both items keep the scan image they came from.
	assert.Equal(t, "https://bucket.s3.ap-northeast-2.amazonaws.com/scans/scan-1.jpg", itemRepo.saved[0].ImageURL)
	assert.Equal(t, "https://bucket.s3.ap-northeast-2.amazonaws.com/scans/scan-1.jpg", itemRepo.saved[1].ImageURL)
}

func TestSaveItemsConcreteDateOverridesExpiryText(t *testing.T) {
	itemRepo := &fakeItemRepository{}
	service := NewOcrService(itemRepo, newFakeCategoryService(), nil)

	userID := uuid.New().String()
	res, err := service.SaveItems(context.Background(), domain.SaveItemsRequest{
		UserID: userID,
		Items: []domain.SaveScannedItem{
			// The user corrected the classifier's guess with a date picker.
			{ItemName: "우유", MajorName: "동물성 식재료", SubName: "유제품", ExpiryText: "7일", ExpiryDate: "2026-09-15"},
			// No expiry text at all, only a picked date.
			{ItemName: "치즈", MajorName: "동물성 식재료", SubName: "유제품", ExpiryDate: "2026-10-01"},
		},
	}, userID)
	require.NoError(t, err)

	assert.Len(t, res.SavedItems, 2)
	require.NotNil(t, itemRepo.saved[0].ExpiryDate)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *itemRepo.saved[0].ExpiryDate)
	require.NotNil(t, itemRepo.saved[1].ExpiryDate)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *itemRepo.saved[1].ExpiryDate)
}

func TestSaveItemsRejectsMalformedConcreteDate(t *testing.T) {
	itemRepo := &fakeItemRepository{}
	service := NewOcrService(itemRepo, newFakeCategoryService(), nil)

	userID := uuid.New().String()
	_, err := service.SaveItems(context.Background(), domain.SaveItemsRequest{
		UserID: userID,
		Items: []domain.SaveScannedItem{
			{ItemName: "우유", MajorName: "동물성 식재료", SubName: "유제품", ExpiryDate: "15-09-2026"},
		},
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
	assert.Empty(t, itemRepo.saved)
}

func TestSaveItemsIndefiniteExpiry(t *testing.T) {
	itemRepo := &fakeItemRepository{}
	service := NewOcrService(itemRepo, newFakeCategoryService(), nil)

	userID := uuid.New().String()
	_, err := service.SaveItems(context.Background(), domain.SaveItemsRequest{
		UserID: userID,
		Items: []domain.SaveScannedItem{
			{ItemName: "소금", MajorName: "동물성 식재료", SubName: "유제품", ExpiryText: "무기한"},
		},
	}, userID)
	require.NoError(t, err)

	require.Len(t, itemRepo.saved, 1)
	assert.Nil(t, itemRepo.saved[0].ExpiryDate)
}

func TestSaveItemsReportsUnresolvedNames(t *testing.T) {
	itemRepo := &fakeItemRepository{}
	categories := newFakeCategoryService()
	service := NewOcrService(itemRepo, categories, nil)

	userID := uuid.New().String()
	res, err := service.SaveItems(context.Background(), domain.SaveItemsRequest{
		UserID: userID,
		Items: []domain.SaveScannedItem{
			{ItemName: "정체불명", MajorName: "없는 대분류", SubName: "없는 소분류", ExpiryText: "5일"},
		},
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, []string{"정체불명"}, res.UnresolvedNames)
	require.Len(t, itemRepo.saved, 1)
	// Saved under the fallback category rather than dropped.
	assert.Equal(t, categories.known[0].ID, itemRepo.saved[0].CategoryID)
}

func TestSaveItemsRejectsMalformedExpiryText(t *testing.T) {
	itemRepo := &fakeItemRepository{}
	service := NewOcrService(itemRepo, newFakeCategoryService(), nil)

	userID := uuid.New().String()
	_, err := service.SaveItems(context.Background(), domain.SaveItemsRequest{
		UserID: userID,
		Items: []domain.SaveScannedItem{
			{ItemName: "우유", MajorName: "동물성 식재료", SubName: "유제품", ExpiryText: "며칠"},
		},
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryText)
	assert.Empty(t, itemRepo.saved)
}

func TestSaveItemsRejectsUserMismatch(t *testing.T) {
	service := NewOcrService(&fakeItemRepository{}, newFakeCategoryService(), nil)

	_, err := service.SaveItems(context.Background(), domain.SaveItemsRequest{
		UserID: uuid.New().String(),
		Items: []domain.SaveScannedItem{
			{ItemName: "우유", MajorName: "동물성 식재료", SubName: "유제품", ExpiryText: "7일"},
		},
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestSaveItemsRejectsEmptyBatch(t *testing.T) {
	service := NewOcrService(&fakeItemRepository{}, newFakeCategoryService(), nil)

	userID := uuid.New().String()
	_, err := service.SaveItems(context.Background(), domain.SaveItemsRequest{UserID: userID}, userID)
	assert.ErrorIs(t, err, domain.ErrEmptySaveBatch)
}

func TestExtractNamesRequiresImage(t *testing.T) {
	service := NewOcrService(&fakeItemRepository{}, newFakeCategoryService(), nil)

	_, err := service.ExtractNames(context.Background(), domain.ExtractNamesRequest{}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrExtractMissingImage)
}

func TestClassifyNamesRequiresInput(t *testing.T) {
	service := NewOcrService(&fakeItemRepository{}, newFakeCategoryService(), nil)

	_, err := service.ClassifyNames(context.Background(), domain.ClassifyNamesRequest{})
	assert.ErrorIs(t, err, domain.ErrClassifyEmptyInput)
}
