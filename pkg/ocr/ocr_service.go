package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/utils"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/utils/storage"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/category"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/item"
	"github.com/google/uuid"
)

type (
	OcrService interface {
		ExtractNames(ctx context.Context, req domain.ExtractNamesRequest, userID string) (domain.ExtractNamesResponse, error)
		ClassifyNames(ctx context.Context, req domain.ClassifyNamesRequest) (domain.ClassifyNamesResponse, error)
		SaveItems(ctx context.Context, req domain.SaveItemsRequest, userID string) (domain.SaveItemsResponse, error)
	}

	ocrService struct {
		itemRepository  item.ItemRepository
		categoryService category.CategoryService
		s3              storage.AwsS3
	}
)

func NewOcrService(itemRepository item.ItemRepository, categoryService category.CategoryService, s3 storage.AwsS3) OcrService {
	return &ocrService{
		itemRepository:  itemRepository,
		categoryService: categoryService,
		s3:              s3,
	}
}

func (s *ocrService) ExtractNames(ctx context.Context, req domain.ExtractNamesRequest, userID string) (domain.ExtractNamesResponse, error) {
	if req.Image == nil {
		return domain.ExtractNamesResponse{}, domain.ErrExtractMissingImage
	}

	ocrModelURL := utils.GetConfig("OCR_MODEL_URL")
	if ocrModelURL == "" {
		return domain.ExtractNamesResponse{}, fmt.Errorf("OCR_MODEL_URL environment variable not set")
	}

	// Keep the original image around; its public link travels with the
	// extracted names so save-items can attach it to the created items.
	fileName := fmt.Sprintf("scan-%s", uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "scans", storage.AllowImage...)
	if err != nil {
		return domain.ExtractNamesResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	file, err := req.Image.Open()
	if err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.ExtractNamesResponse{}, err
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return domain.ExtractNamesResponse{}, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", req.Image.Filename)
	if err != nil {
		return domain.ExtractNamesResponse{}, err
	}
	if _, err = part.Write(fileBytes); err != nil {
		return domain.ExtractNamesResponse{}, err
	}
	if err = writer.Close(); err != nil {
		return domain.ExtractNamesResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", ocrModelURL, body)
	if err != nil {
		return domain.ExtractNamesResponse{}, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return domain.ExtractNamesResponse{}, domain.ErrOcrModelFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.ExtractNamesResponse{}, fmt.Errorf("ocr model error: %s - %s", resp.Status, string(bodyBytes))
	}

	var modelResp struct {
		ExtractedNames []string `json:"extracted_names"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&modelResp); err != nil {
		return domain.ExtractNamesResponse{}, domain.ErrOcrModelFailed
	}

	// An empty list is a valid outcome: nothing was recognized.
	return domain.ExtractNamesResponse{
		ExtractedNames: modelResp.ExtractedNames,
		ImageURL:       imageURL,
	}, nil
}

func (s *ocrService) ClassifyNames(ctx context.Context, req domain.ClassifyNamesRequest) (domain.ClassifyNamesResponse, error) {
	if len(req.Names) == 0 {
		return domain.ClassifyNamesResponse{}, domain.ErrClassifyEmptyInput
	}

	categories, err := s.categoryService.GetCategories(ctx)
	if err != nil {
		return domain.ClassifyNamesResponse{}, err
	}
	if len(categories) == 0 {
		return domain.ClassifyNamesResponse{}, domain.ErrNoCategories
	}

	classified, err := s.classifyWithGemini(ctx, req.Names, categories)
	if err != nil {
		return domain.ClassifyNamesResponse{}, err
	}
	return domain.ClassifyNamesResponse{Items: classified}, nil
}

func (s *ocrService) classifyWithGemini(ctx context.Context, names []string, categories []domain.CategoryResponse) ([]domain.ClassifiedItem, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	pairs := make([]map[string]string, 0, len(categories))
	for _, c := range categories {
		pairs = append(pairs, map[string]string{
			"category_major_name": c.MajorName,
			"category_sub_name":   c.SubName,
		})
	}
	pairsJSON, _ := json.Marshal(pairs)
	namesJSON, _ := json.Marshal(names)

	prompt := fmt.Sprintf(
		"You are a grocery classification assistant for a Korean household fridge app. "+
			"Given these food item names: %s, classify each one into exactly one of the "+
			"following category pairs: %s. "+
			"For each input name also estimate a coarse shelf life as expiry_text: "+
			"either a number of days followed by the Korean unit '일' (for example \"7일\"), "+
			"or the literal string \"무기한\" for items that effectively never expire. "+
			"Respond ONLY with a valid JSON array with one object per input name, in the "+
			"same order, each having exactly these fields: item_name, category_major_name, "+
			"category_sub_name, expiry_text. "+
			"Do not include any explanations, markdown formatting, or extra text.",
		string(namesJSON),
		string(pairsJSON),
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
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(geminiReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
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
		return nil, err
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrClassifierFailed
	}

	responseText := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)

	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return nil, fmt.Errorf("invalid response format: %s", responseText)
	}
	responseText = responseText[startIdx : endIdx+1]

	var classified []domain.ClassifiedItem
	if err := json.Unmarshal([]byte(responseText), &classified); err != nil {
		return nil, err
	}

	for i := range classified {
		if classified[i].ExpiryText == "" {
			classified[i].ExpiryText = item.ExpiryTextIndefinite
		}
	}
	return classified, nil
}

func (s *ocrService) SaveItems(ctx context.Context, req domain.SaveItemsRequest, userID string) (domain.SaveItemsResponse, error) {
	if req.UserID != userID {
		return domain.SaveItemsResponse{}, domain.ErrUserNotAllowed
	}
	if len(req.Items) == 0 {
		return domain.SaveItemsResponse{}, domain.ErrEmptySaveBatch
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SaveItemsResponse{}, domain.ErrParseUUID
	}

	now := time.Now()
	items := make([]*entities.Item, 0, len(req.Items))
	var unresolved []string

	for _, record := range req.Items {
		var expiryDate *time.Time
		if record.ExpiryDate != "" {
			parsed, err := time.Parse("2006-01-02", record.ExpiryDate)
			if err != nil {
				return domain.SaveItemsResponse{}, domain.ErrInvalidExpiryDate
			}
			expiryDate = &parsed
		} else {
			parsed, err := item.ParseExpiryText(record.ExpiryText, now)
			if err != nil {
				return domain.SaveItemsResponse{}, err
			}
			expiryDate = parsed
		}

		resolution, err := s.categoryService.ResolveLabels(ctx, record.MajorName, record.SubName)
		if err != nil {
			return domain.SaveItemsResponse{}, err
		}
		if !resolution.Resolved {
			unresolved = append(unresolved, record.ItemName)
		}

		items = append(items, &entities.Item{
			ID:         uuid.New(),
			UserID:     userUUID,
			CategoryID: resolution.Category.ID,
			Name:       record.ItemName,
			ExpiryDate: expiryDate,
			ImageURL:   req.ImageURL,
		})
	}

	if err := s.itemRepository.AddItems(ctx, items); err != nil {
		return domain.SaveItemsResponse{}, err
	}

	saved := make([]string, 0, len(items))
	for _, it := range items {
		saved = append(saved, it.ID.String())
	}
	return domain.SaveItemsResponse{
		SavedItems:      saved,
		UnresolvedNames: unresolved,
	}, nil
}
