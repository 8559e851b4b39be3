package usecase

import (
	"context"
	"testing"
	"time"

	"portal-api/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuth_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := jwt.NewHMACService("signing-key", time.Hour)
	uc := NewAdminAuthUsecase("admin", string(hash), svc)
	ctx := context.Background()

	tok, err := uc.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, tok.AccessToken)
	assert.True(t, tok.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(tok.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())

	_, err = uc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Login(ctx, "root", "s3cret")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdminAuth_DisabledWithoutHash(t *testing.T) {
	uc := NewAdminAuthUsecase("admin", "", jwt.NewHMACService("k", time.Hour))
	_, err := uc.Login(context.Background(), "admin", "anything")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
