package notification

import (
	"context"

	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	NotificationRepository interface {
		SaveToken(ctx context.Context, token *entities.PushToken) error
		GetTokensByUserID(ctx context.Context, userID string) ([]*entities.PushToken, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// SaveToken re-registers an existing device token under its latest user.
func (r *notificationRepository) SaveToken(ctx context.Context, token *entities.PushToken) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "updated_at"}),
	}).Create(token).Error
}

func (r *notificationRepository) GetTokensByUserID(ctx context.Context, userID string) ([]*entities.PushToken, error) {
	var tokens []*entities.PushToken
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
