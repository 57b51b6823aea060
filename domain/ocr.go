package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessExtractNames  = "names extracted successfully"
	MessageSuccessClassifyNames = "names classified successfully"
	MessageSuccessSaveItems     = "scanned items saved successfully"

	MessageFailedExtractNames  = "failed to extract names from image"
	MessageFailedClassifyNames = "failed to classify names"
	MessageFailedSaveItems     = "failed to save scanned items"

	ErrInvalidExpiryText   = errors.New("expiry text contains no digits")
	ErrOcrModelFailed      = errors.New("ocr model processing failed")
	ErrClassifierFailed    = errors.New("classifier processing failed")
	ErrEmptySaveBatch      = errors.New("no scanned items to save")
	ErrClassifyEmptyInput  = errors.New("no names to classify")
	ErrExtractMissingImage = errors.New("image file is required")
)

type (
	ExtractNamesRequest struct {
		Image *multipart.FileHeader `json:"file" form:"file" validate:"required"`
	}

	ExtractNamesResponse struct {
		ExtractedNames []string `json:"extracted_names"`
		// ImageURL is the public link of the stored scan; the client
		// echoes it back on save-items so the items keep their source
		// image.
		ImageURL string `json:"image_url"`
	}

	ClassifyNamesRequest struct {
		Names []string `json:"names" validate:"required,min=1,dive,required"`
	}

	// ClassifiedItem carries the classifier's best-effort labels for one
	// recognized name. ExpiryText is a coarse duration such as "7일", or
	// the sentinel "무기한" for items without an expiry date.
	ClassifiedItem struct {
		ItemName   string `json:"item_name"`
		MajorName  string `json:"category_major_name"`
		SubName    string `json:"category_sub_name"`
		ExpiryText string `json:"expiry_text"`
	}

	ClassifyNamesResponse struct {
		Items []ClassifiedItem `json:"items"`
	}

	// SaveScannedItem carries either the classifier's ExpiryText or a
	// concrete ExpiryDate the user picked while reviewing; the date wins
	// when both are present.
	SaveScannedItem struct {
		ItemName   string `json:"item_name" validate:"required"`
		MajorName  string `json:"category_major_name" validate:"required"`
		SubName    string `json:"category_sub_name" validate:"required"`
		ExpiryText string `json:"expiry_text" validate:"required_without=ExpiryDate"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	}

	SaveItemsRequest struct {
		UserID   string            `json:"user_id" validate:"required,uuid"`
		ImageURL string            `json:"image_url" validate:"omitempty,url"`
		Items    []SaveScannedItem `json:"items" validate:"required,min=1,dive"`
	}

	SaveItemsResponse struct {
		SavedItems []string `json:"saved_items"`
		// UnresolvedNames lists items whose category labels did not match
		// the directory and were saved under the fallback category.
		UnresolvedNames []string `json:"unresolved_names,omitempty"`
	}
)
