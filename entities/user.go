package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"user_id"`
	LoginID      string    `gorm:"uniqueIndex" json:"login_id"`
	Password     string    `json:"-"`
	Username     string    `json:"username"`
	Notification bool      `gorm:"default:true" json:"notification"`
	Email        string    `json:"email,omitempty"`

	Items      []*Item      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PushTokens []*PushToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
