package item

import (
	"context"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.Item) error
		AddItems(ctx context.Context, items []*entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		DeleteItems(ctx context.Context, userID string, ids []string) (int64, error)
		GetItems(ctx context.Context, userID string) ([]*entities.Item, error)
		GetItemsExpiringBetween(ctx context.Context, start, end time.Time) ([]*entities.Item, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) AddItems(ctx context.Context, items []*entities.Item) error {
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// DeleteItems removes the given ids for one user in a single transaction.
// The whole batch is rejected when any id is missing or owned by someone
// else, so a delete never touches more or fewer rows than requested.
func (r *itemRepository) DeleteItems(ctx context.Context, userID string, ids []string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Item{}).
			Where("user_id = ? AND id IN ?", userID, ids).
			Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return gorm.ErrRecordNotFound
		}

		result := tx.Where("user_id = ? AND id IN ?", userID, ids).
			Delete(&entities.Item{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

func (r *itemRepository) GetItems(ctx context.Context, userID string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiry_date asc NULLS LAST").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetItemsExpiringBetween(ctx context.Context, start, end time.Time) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("expiry_date IS NOT NULL AND expiry_date BETWEEN ? AND ?", start, end).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
