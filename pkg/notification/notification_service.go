package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/utils"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/utils/mailing"
	"github.com/Jerry-724/fridge-and-recipe-74/pkg/item"
	"github.com/google/uuid"
)

const fcmSendURL = "https://fcm.googleapis.com/fcm/send"

// Items expiring within this many days trigger a notification.
const expiryWarningDays = 3

type (
	NotificationService interface {
		RegisterToken(ctx context.Context, req domain.RegisterTokenRequest, userID string) error
		SendPush(ctx context.Context, userID string, title, body string) error
		NotifyExpiringItems(ctx context.Context) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		itemRepository         item.ItemRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository, itemRepository item.ItemRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		itemRepository:         itemRepository,
	}
}

func (s *notificationService) RegisterToken(ctx context.Context, req domain.RegisterTokenRequest, userID string) error {
	if req.UserID != userID {
		return domain.ErrUserNotAllowed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.notificationRepository.SaveToken(ctx, &entities.PushToken{
		ID:     uuid.New(),
		UserID: userUUID,
		Token:  req.Token,
	})
}

func (s *notificationService) SendPush(ctx context.Context, userID string, title, body string) error {
	serverKey := utils.GetConfig("FCM_SERVER_KEY")
	if serverKey == "" {
		return fmt.Errorf("FCM_SERVER_KEY environment variable not set")
	}

	tokens, err := s.notificationRepository.GetTokensByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	var lastErr error

	for _, token := range tokens {
		payload := map[string]interface{}{
			"to": token.Token,
			"notification": map[string]string{
				"title": title,
				"body":  body,
			},
		}

		payloadJSON, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "POST", fcmSendURL, bytes.NewBuffer(payloadJSON))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "key="+serverKey)

		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			lastErr = fmt.Errorf("fcm error: %s - %s", resp.Status, string(bodyBytes))
		}
		resp.Body.Close()
	}

	if lastErr != nil {
		return domain.ErrPushFailed
	}
	return nil
}

// NotifyExpiringItems pushes (and emails, when an address is known) a
// digest of items expiring within the warning window, one message per
// user. Users who disabled notifications are skipped.
func (s *notificationService) NotifyExpiringItems(ctx context.Context) error {
	now := time.Now()
	end := now.AddDate(0, 0, expiryWarningDays)

	items, err := s.itemRepository.GetItemsExpiringBetween(ctx, now, end)
	if err != nil {
		return err
	}

	byUser := make(map[string][]*entities.Item)
	users := make(map[string]*entities.User)
	for _, it := range items {
		if it.User == nil || !it.User.Notification {
			continue
		}
		id := it.UserID.String()
		byUser[id] = append(byUser[id], it)
		users[id] = it.User
	}

	for userID, userItems := range byUser {
		names := make([]string, 0, len(userItems))
		for _, it := range userItems {
			daysLeft := item.DaysLeft(it.ExpiryDate, now)
			names = append(names, fmt.Sprintf("%s (%d일)", it.Name, *daysLeft))
		}

		title := "유통기한 임박 알림"
		body := fmt.Sprintf("곧 만료되는 식품이 %d개 있습니다: %s", len(names), strings.Join(names, ", "))

		if err := s.SendPush(ctx, userID, title, body); err != nil {
			log.Printf("Error sending expiry push for user %s: %v", userID, err)
		}

		if user := users[userID]; user.Email != "" {
			if err := mailing.SendMail(user.Email, title, body); err != nil {
				log.Printf("Error sending expiry mail for user %s: %v", userID, err)
			}
		}
	}
	return nil
}
