package domain

import "errors"

var (
	MessageSuccessRegisterToken = "push token registered successfully"
	MessageFailedRegisterToken  = "failed to register push token"

	ErrPushFailed = errors.New("push delivery failed")
)

type RegisterTokenRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Token  string `json:"token" validate:"required"`
}
