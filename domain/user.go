package domain

import "errors"

var (
	MessageSuccessRegister           = "user registered successfully"
	MessageSuccessLogin              = "login successful"
	MessageSuccessGetMe              = "user profile retrieved successfully"
	MessageSuccessUpdateUsername     = "username updated successfully"
	MessageSuccessUpdatePassword     = "password updated successfully"
	MessageSuccessUpdateEmail        = "email updated successfully"
	MessageSuccessUpdateNotification = "notification preference updated successfully"
	MessageSuccessDeleteAccount      = "account deleted successfully"

	MessageFailedRegister           = "failed to register user"
	MessageFailedLogin              = "failed to login"
	MessageFailedGetMe              = "failed to retrieve user profile"
	MessageFailedUpdateUsername     = "failed to update username"
	MessageFailedUpdatePassword     = "failed to update password"
	MessageFailedUpdateEmail        = "failed to update email"
	MessageFailedUpdateNotification = "failed to update notification preference"
	MessageFailedDeleteAccount      = "failed to delete account"

	ErrLoginIDAlreadyExists = errors.New("login id already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrCredentialsInvalid   = errors.New("login id or password is wrong")
	ErrPasswordIncorrect    = errors.New("password incorrect")
	ErrPasswordSame         = errors.New("new password must differ from the current one")
)

type (
	RegisterRequest struct {
		LoginID  string `json:"login_id" validate:"required,min=4,max=20"`
		Password string `json:"password" validate:"required,min=8"`
		Username string `json:"username" validate:"required,min=1,max=30"`
		// Email is optional; when present it also receives the expiry digest.
		Email string `json:"email" validate:"omitempty,email"`
	}

	LoginRequest struct {
		LoginID  string `json:"login_id" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserResponse struct {
		UserID       string `json:"user_id"`
		LoginID      string `json:"login_id"`
		Username     string `json:"username"`
		Email        string `json:"email,omitempty"`
		Notification bool   `json:"notification"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateUsernameRequest struct {
		Username string `json:"username" validate:"required,min=1,max=30"`
	}

	UpdatePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	// UpdateEmailRequest with an empty Email removes the address and
	// stops the expiry digest mails.
	UpdateEmailRequest struct {
		Email string `json:"email" validate:"omitempty,email"`
	}

	UpdateNotificationRequest struct {
		Notification *bool `json:"notification" validate:"required"`
	}

	DeleteAccountRequest struct {
		Password string `json:"password" validate:"required"`
	}
)
