package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/Jerry-724/fridge-and-recipe-74/internal/api/presenters"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	registered map[string]bool
	loginErr   error
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{registered: make(map[string]bool)}
}

func (s *fakeUserService) Register(_ context.Context, req domain.RegisterRequest) error {
	if s.registered[req.LoginID] {
		return domain.ErrLoginIDAlreadyExists
	}
	s.registered[req.LoginID] = true
	return nil
}

func (s *fakeUserService) Login(_ context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if s.loginErr != nil {
		return domain.LoginResponse{}, s.loginErr
	}
	return domain.LoginResponse{
		Token: "test-token",
		User:  domain.UserResponse{LoginID: req.LoginID},
	}, nil
}

func (s *fakeUserService) Me(_ context.Context, userID string) (domain.UserResponse, error) {
	return domain.UserResponse{UserID: userID}, nil
}

func (s *fakeUserService) UpdateUsername(_ context.Context, userID string, req domain.UpdateUsernameRequest) (domain.UserResponse, error) {
	return domain.UserResponse{UserID: userID, Username: req.Username}, nil
}

func (s *fakeUserService) UpdateEmail(_ context.Context, userID string, req domain.UpdateEmailRequest) (domain.UserResponse, error) {
	return domain.UserResponse{UserID: userID, Email: req.Email}, nil
}

func (s *fakeUserService) UpdatePassword(_ context.Context, _ string, _ domain.UpdatePasswordRequest) error {
	return nil
}

func (s *fakeUserService) UpdateNotification(_ context.Context, userID string, req domain.UpdateNotificationRequest) (domain.UserResponse, error) {
	return domain.UserResponse{UserID: userID, Notification: *req.Notification}, nil
}

func (s *fakeUserService) DeleteAccount(_ context.Context, _ string, _ domain.DeleteAccountRequest) error {
	return nil
}

func newTestApp(service *fakeUserService, authedUserID string) *fiber.App {
	app := fiber.New()
	handler := NewUserHandler(service, validator.New())

	app.Post("/api/v1/user", handler.Register)
	app.Post("/api/v1/user/login", handler.Login)

	authed := app.Group("/api/v1/user", func(c *fiber.Ctx) error {
		c.Locals("user_id", authedUserID)
		return c.Next()
	})
	authed.Get("/me", handler.Me)
	authed.Patch("/:id/username", handler.UpdateUsername)

	return app
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, resp *http.Response) presenters.Response {
	t.Helper()
	var body presenters.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRegisterHandler(t *testing.T) {
	app := newTestApp(newFakeUserService(), uuid.New().String())

	req := jsonRequest(t, "POST", "/api/v1/user", domain.RegisterRequest{
		LoginID:  "fridge01",
		Password: "secret-password",
		Username: "우리집 냉장고",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, decodeResponse(t, resp).Success)

	// Same login id again conflicts.
	req = jsonRequest(t, "POST", "/api/v1/user", domain.RegisterRequest{
		LoginID:  "fridge01",
		Password: "secret-password",
		Username: "우리집 냉장고",
	})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, decodeResponse(t, resp).Success)
}

func TestRegisterHandlerValidatesBody(t *testing.T) {
	app := newTestApp(newFakeUserService(), uuid.New().String())

	// Password below the minimum length.
	req := jsonRequest(t, "POST", "/api/v1/user", domain.RegisterRequest{
		LoginID:  "fridge01",
		Password: "short",
		Username: "우리집 냉장고",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginHandler(t *testing.T) {
	service := newFakeUserService()
	app := newTestApp(service, uuid.New().String())

	req := jsonRequest(t, "POST", "/api/v1/user/login", domain.LoginRequest{
		LoginID:  "fridge01",
		Password: "secret-password",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	service.loginErr = domain.ErrCredentialsInvalid
	req = jsonRequest(t, "POST", "/api/v1/user/login", domain.LoginRequest{
		LoginID:  "fridge01",
		Password: "wrong-password",
	})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateUsernameHandlerRejectsOtherUsers(t *testing.T) {
	authedID := uuid.New().String()
	app := newTestApp(newFakeUserService(), authedID)

	req := jsonRequest(t, "PATCH", "/api/v1/user/"+uuid.New().String()+"/username", domain.UpdateUsernameRequest{
		Username: "새 이름",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = jsonRequest(t, "PATCH", "/api/v1/user/"+authedID+"/username", domain.UpdateUsernameRequest{
		Username: "새 이름",
	})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
