package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewHMACService("secret", time.Hour)
	s.now = func() time.Time { return now }

	tok, exp, err := s.GenerateAdminToken("admin")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	c, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.True(t, c.IsAdmin())
	assert.Equal(t, "admin", c.Subject)
}

func TestHMACService_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewHMACService("secret", time.Minute)
	s.now = func() time.Time { return now }

	tok, _, err := s.GenerateAdminToken("admin")
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = s.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecretOrAlg(t *testing.T) {
	a := NewHMACService("secret-a", time.Hour)
	b := NewHMACService("secret-b", time.Hour)

	tok, _, err := a.GenerateAdminToken("admin")
	require.NoError(t, err)

	_, err = b.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	none := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{Role: RoleAdmin})
	unsigned, err := none.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = a.ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_Unconfigured(t *testing.T) {
	s := NewHMACService("", time.Hour)
	_, _, err := s.GenerateAdminToken("admin")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = s.ValidateToken("x.y.z")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
