package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"portal-api/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type AdminToken struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type AdminAuthUsecase interface {
	Login(ctx context.Context, username, password string) (AdminToken, error)
}

type AdminAuth struct {
	username     string
	passwordHash []byte
	jwt          jwt.Service
}

// NewAdminAuthUsecase returns an authenticator for the single configured
// admin. With an empty passwordHash every login is rejected.
func NewAdminAuthUsecase(username, passwordHash string, jwtSvc jwt.Service) *AdminAuth {
	return &AdminAuth{username: username, passwordHash: []byte(passwordHash), jwt: jwtSvc}
}

func (u *AdminAuth) Login(ctx context.Context, username, password string) (AdminToken, error) {
	if username == "" || password == "" {
		return AdminToken{}, ErrInvalidInput
	}
	if len(u.passwordHash) == 0 || u.jwt == nil {
		return AdminToken{}, ErrUnauthorized
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return AdminToken{}, ErrUnauthorized
	}

	tok, exp, err := u.jwt.GenerateAdminToken(u.username)
	if err != nil {
		return AdminToken{}, ErrInternal
	}
	return AdminToken{AccessToken: tok, ExpiresAt: exp}, nil
}
