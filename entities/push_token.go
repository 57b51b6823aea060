package entities

import (
	"github.com/google/uuid"
)

type PushToken struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Token  string    `gorm:"uniqueIndex" json:"token"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
