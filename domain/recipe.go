package domain

import "errors"

var (
	MessageSuccessRecommendRecipes = "recipe recommendation generated successfully"
	MessageFailedRecommendRecipes  = "failed to generate recipe recommendation"

	ErrEmptyQuery      = errors.New("query must not be empty")
	ErrGeminiAPIFailed = errors.New("gemini processing failed")
)

type (
	RecommendRecipesRequest struct {
		Query string `json:"query" validate:"required"`
	}

	RecommendRecipesResponse struct {
		Answer string `json:"answer"`
	}
)
