package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingNotificationService struct {
	mu     sync.Mutex
	sweeps int
}

func (s *countingNotificationService) RegisterToken(_ context.Context, _ domain.RegisterTokenRequest, _ string) error {
	return nil
}

func (s *countingNotificationService) SendPush(_ context.Context, _ string, _, _ string) error {
	return nil
}

func (s *countingNotificationService) NotifyExpiringItems(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweeps++
	return nil
}

func (s *countingNotificationService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweeps
}

func TestExpiryWorkerRunsSweeps(t *testing.T) {
	service := &countingNotificationService{}
	worker := NewExpiryWorker(service, 10*time.Millisecond)

	worker.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	worker.Stop()

	swept := service.count()
	assert.GreaterOrEqual(t, swept, 2)

	// No more sweeps after Stop returns.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, swept, service.count())
}

func TestExpiryWorkerStopWithoutStart(t *testing.T) {
	worker := NewExpiryWorker(&countingNotificationService{}, time.Hour)
	worker.Stop()
}

func TestExpiryWorkerDefaultInterval(t *testing.T) {
	worker := NewExpiryWorker(&countingNotificationService{}, 0)
	assert.Equal(t, 24*time.Hour, worker.interval)
}

type memoryTokenRepository struct {
	tokens map[string]*entities.PushToken
}

func newMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{tokens: make(map[string]*entities.PushToken)}
}

func (r *memoryTokenRepository) SaveToken(_ context.Context, token *entities.PushToken) error {
	if existing, ok := r.tokens[token.Token]; ok {
		existing.UserID = token.UserID
		return nil
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *memoryTokenRepository) GetTokensByUserID(_ context.Context, userID string) ([]*entities.PushToken, error) {
	var tokens []*entities.PushToken
	for _, t := range r.tokens {
		if t.UserID.String() == userID {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}

func TestRegisterToken(t *testing.T) {
	repo := newMemoryTokenRepository()
	service := NewNotificationService(repo, nil)

	userID := uuid.New().String()
	err := service.RegisterToken(context.Background(), domain.RegisterTokenRequest{
		UserID: userID,
		Token:  "device-token-1",
	}, userID)
	require.NoError(t, err)
	assert.Len(t, repo.tokens, 1)

	// The same device re-registering under a new user takes the token over.
	otherID := uuid.New()
	err = service.RegisterToken(context.Background(), domain.RegisterTokenRequest{
		UserID: otherID.String(),
		Token:  "device-token-1",
	}, otherID.String())
	require.NoError(t, err)
	assert.Len(t, repo.tokens, 1)
	assert.Equal(t, otherID, repo.tokens["device-token-1"].UserID)
}

func TestRegisterTokenRejectsUserMismatch(t *testing.T) {
	service := NewNotificationService(newMemoryTokenRepository(), nil)

	err := service.RegisterToken(context.Background(), domain.RegisterTokenRequest{
		UserID: uuid.New().String(),
		Token:  "device-token-1",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}
