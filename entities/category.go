package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"category_id"`
	MajorName string    `gorm:"index:idx_category_pair,unique" json:"category_major_name"`
	SubName   string    `gorm:"index:idx_category_pair,unique" json:"category_sub_name"`
	SortOrder int       `json:"-"`

	Timestamp
}
