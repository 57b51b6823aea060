package entities

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"item_id"`
	UserID     uuid.UUID  `json:"user_id"`
	CategoryID uuid.UUID  `json:"category_id"`
	Name       string     `json:"item_name"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"` // nil means indefinite shelf life
	ImageURL   string     `json:"image_url,omitempty"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Timestamp
}
