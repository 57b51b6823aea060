package jwt

import (
	"testing"
	"time"

	"github.com/Jerry-724/fridge-and-recipe-74/domain"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "WHAT_TO_EAT"}
}

func TestGenerateAndResolveToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New().String()

	token := service.GenerateTokenUser(userID, domain.RoleUser)
	require.NotEmpty(t, token)

	gotID, gotRole, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, domain.RoleUser, gotRole)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	service := newTestService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenRejectsWrongKey(t *testing.T) {
	service := newTestService()
	token := service.GenerateTokenUser(uuid.New().String(), domain.RoleUser)

	other := &jwtService{secretKey: "another-secret", issuer: "WHAT_TO_EAT"}
	_, _, err := other.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenRejectsExpired(t *testing.T) {
	service := newTestService()

	claims := jwtUserClaim{
		uuid.New().String(),
		domain.RoleUser,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(service.secretKey))
	require.NoError(t, err)

	_, _, err = service.GetUserIDByToken(signed)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
