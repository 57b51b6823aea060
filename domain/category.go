package domain

import "errors"

var (
	MessageSuccessGetCategories = "categories retrieved successfully"
	MessageFailedGetCategories  = "failed to retrieve categories"

	ErrCategoryNotFound = errors.New("category not found")
	ErrNoCategories     = errors.New("category directory is empty")
)

type CategoryResponse struct {
	CategoryID string `json:"category_id"`
	MajorName  string `json:"category_major_name"`
	SubName    string `json:"category_sub_name"`
}
