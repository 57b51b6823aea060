package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/utils"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/item"
)

type (
	RecipeService interface {
		RecommendRecipes(ctx context.Context, query string, userID string) (domain.RecommendRecipesResponse, error)
	}

	recipeService struct {
		itemRepository item.ItemRepository
	}
)

func NewRecipeService(itemRepository item.ItemRepository) RecipeService {
	return &recipeService{itemRepository: itemRepository}
}

func (s *recipeService) RecommendRecipes(ctx context.Context, query string, userID string) (domain.RecommendRecipesResponse, error) {
	if strings.TrimSpace(query) == "" {
		return domain.RecommendRecipesResponse{}, domain.ErrEmptyQuery
	}

	items, err := s.itemRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.RecommendRecipesResponse{}, err
	}

	now := time.Now()
	ingredients := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		ingredient := map[string]interface{}{
			"name": it.Name,
		}
		if daysLeft := item.DaysLeft(it.ExpiryDate, now); daysLeft != nil {
			ingredient["daysUntilExpiry"] = *daysLeft
		}
		ingredients = append(ingredients, ingredient)
	}

	answer, err := s.askGemini(ctx, query, ingredients)
	if err != nil {
		return domain.RecommendRecipesResponse{}, err
	}
	return domain.RecommendRecipesResponse{Answer: answer}, nil
}

func (s *recipeService) askGemini(ctx context.Context, query string, ingredients []map[string]interface{}) (string, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	ingredientsJSON, _ := json.Marshal(ingredients)

	prompt := fmt.Sprintf(
		"You are a friendly Korean home-cooking assistant for a fridge inventory app. "+
			"The user's fridge currently contains these ingredients (with days until expiry "+
			"where known): %s. "+
			"The user asks: %q. "+
			"Answer in Korean with a concise, natural-language recipe recommendation. "+
			"Prefer recipes that use the ingredients closest to expiry. "+
			"If the fridge is empty or the question is unrelated to cooking, still answer "+
			"helpfully in one or two sentences. Respond with plain text only.",
		string(ingredientsJSON),
		query,
	)

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(geminiReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrGeminiAPIFailed
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}
