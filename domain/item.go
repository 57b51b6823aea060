package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddItem     = "item added successfully"
	MessageSuccessUpdateItem  = "item updated successfully"
	MessageSuccessDeleteItems = "items deleted successfully"
	MessageSuccessGetItems    = "items retrieved successfully"

	MessageFailedAddItem     = "failed to add item"
	MessageFailedUpdateItem  = "failed to update item"
	MessageFailedDeleteItems = "failed to delete items"
	MessageFailedGetItems    = "failed to retrieve items"

	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrEmptyDeleteBatch  = errors.New("no item ids to delete")
)

type (
	AddItemRequest struct {
		Name       string `json:"item_name" validate:"required"`
		CategoryID string `json:"category_id" validate:"required,uuid"`
		// ExpiryDate is yyyy-mm-dd; empty means indefinite shelf life.
		ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	}

	UpdateItemRequest struct {
		Name       string `json:"item_name" validate:"omitempty"`
		CategoryID string `json:"category_id" validate:"omitempty,uuid"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
		// ClearExpiry switches the item to indefinite, overriding ExpiryDate.
		ClearExpiry bool `json:"clear_expiry"`
	}

	DeleteItemsRequest struct {
		ItemIDs []string `json:"item_ids" validate:"required,min=1,dive,uuid"`
	}

	DeleteItemsResponse struct {
		DeletedCount int `json:"deleted_count"`
	}

	ItemResponse struct {
		ItemID     string     `json:"item_id"`
		UserID     string     `json:"user_id"`
		CategoryID string     `json:"category_id"`
		Name       string     `json:"item_name"`
		ExpiryDate *time.Time `json:"expiry_date,omitempty"`
		// ExpiryText is the display form of ExpiryDate ("7일", "무기한").
		ExpiryText string `json:"expiry_text"`
		ImageURL   string `json:"image_url,omitempty"`
		// DaysLeft is derived from ExpiryDate at response time; nil when
		// the item has an indefinite shelf life.
		DaysLeft  *int      `json:"days_left,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
