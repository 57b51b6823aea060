package item

import (
	"context"
	"errors"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/category"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (domain.ItemResponse, error)
		DeleteItems(ctx context.Context, req domain.DeleteItemsRequest, userID string) (domain.DeleteItemsResponse, error)
		GetItems(ctx context.Context, userID string) ([]domain.ItemResponse, error)
	}

	itemService struct {
		itemRepository     ItemRepository
		categoryRepository category.CategoryRepository
	}
)

func NewItemService(itemRepository ItemRepository, categoryRepository category.CategoryRepository) ItemService {
	return &itemService{
		itemRepository:     itemRepository,
		categoryRepository: categoryRepository,
	}
}

func toItemResponse(item *entities.Item, now time.Time) domain.ItemResponse {
	return domain.ItemResponse{
		ItemID:     item.ID.String(),
		UserID:     item.UserID.String(),
		CategoryID: item.CategoryID.String(),
		Name:       item.Name,
		ExpiryDate: item.ExpiryDate,
		ExpiryText: FormatExpiryText(item.ExpiryDate, now),
		ImageURL:   item.ImageURL,
		DaysLeft:   DaysLeft(item.ExpiryDate, now),
		CreatedAt:  item.CreatedAt,
	}
}

func (s *itemService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.ItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	if _, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrCategoryNotFound
		}
		return domain.ItemResponse{}, err
	}
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.ItemResponse{}, domain.ErrParseUUID
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	item := &entities.Item{
		ID:         uuid.New(),
		UserID:     userUUID,
		CategoryID: categoryUUID,
		Name:       req.Name,
		ExpiryDate: expiryDate,
	}

	if err := s.itemRepository.AddItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item, time.Now()), nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.ItemResponse{}, domain.ErrUserNotAllowed
	}

	if req.Name != "" {
		item.Name = req.Name
	}

	if req.CategoryID != "" {
		if _, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ItemResponse{}, domain.ErrCategoryNotFound
			}
			return domain.ItemResponse{}, err
		}
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrParseUUID
		}
		item.CategoryID = categoryUUID
	}

	if req.ClearExpiry {
		item.ExpiryDate = nil
	} else if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &parsed
	}

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item, time.Now()), nil
}

func (s *itemService) DeleteItems(ctx context.Context, req domain.DeleteItemsRequest, userID string) (domain.DeleteItemsResponse, error) {
	if len(req.ItemIDs) == 0 {
		return domain.DeleteItemsResponse{}, domain.ErrEmptyDeleteBatch
	}

	deleted, err := s.itemRepository.DeleteItems(ctx, userID, req.ItemIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteItemsResponse{}, domain.ErrItemNotFound
		}
		return domain.DeleteItemsResponse{}, err
	}
	return domain.DeleteItemsResponse{DeletedCount: int(deleted)}, nil
}

func (s *itemService) GetItems(ctx context.Context, userID string) ([]domain.ItemResponse, error) {
	items, err := s.itemRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.ItemResponse, 0, len(items))
	for _, it := range items {
		response = append(response, toItemResponse(it, now))
	}
	return response, nil
}
