package auth

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(config.JWT{Secret: "0123456789abcdef", TTL: time.Hour})
	userID := uuid.New()

	token, err := svc.NewToken(userID)
	require.NoError(t, err)

	got, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_Parse(t *testing.T) {
	issuedAt := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	svc := NewTokenService(config.JWT{Secret: "0123456789abcdef", TTL: time.Hour})
	svc.now = func() time.Time { return issuedAt }

	valid, err := svc.NewToken(uuid.New())
	require.NoError(t, err)

	other := NewTokenService(config.JWT{Secret: "another-secret-value", TTL: time.Hour})
	foreign, err := other.NewToken(uuid.New())
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
	}).SignedString([]byte("0123456789abcdef"))
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
		now   time.Time
	}{
		{name: "expired", token: valid, now: issuedAt.Add(2 * time.Hour)},
		{name: "wrong secret", token: foreign, now: issuedAt},
		{name: "unsigned", token: noneToken, now: issuedAt},
		{name: "bad subject", token: badSubject, now: issuedAt},
		{name: "garbage", token: "abc.def.ghi", now: issuedAt},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc.now = func() time.Time { return tc.now }
			_, err := svc.Parse(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
