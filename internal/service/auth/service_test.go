package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/WeddingSalon-BookingService/internal/service/auth/models"
)

const testSecret = "test-secret-that-is-at-least-32-bytes-long"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

func newTestService(t *testing.T) (*Service, *fixedTime) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	clock := &fixedTime{now: time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewService(Config{
		Username:     "admin",
		PasswordHash: string(hash),
		JWTSecret:    testSecret,
		Issuer:       "weddingsalon",
		TokenTTL:     time.Hour,
	}, nopLogger{})
	svc.timeProvider = clock
	return svc, clock
}

func TestLogin_AndParse(t *testing.T) {
	svc, _ := newTestService(t)

	token, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, time.Date(2030, time.June, 1, 13, 0, 0, 0, time.UTC), token.ExpiresAt)

	admin, err := svc.ParseToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, RoleAdmin, admin.Role)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "admin321"},
		{name: "wrong username", username: "root", password: "admin123"},
		{name: "empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &models.LoginRequest{Username: tt.username, Password: tt.password})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestParseToken_Expired(t *testing.T) {
	svc, clock := newTestService(t)

	token, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)
	_, err = svc.ParseToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Rejects(t *testing.T) {
	svc, clock := newTestService(t)
	now := clock.now

	sign := func(method jwt.SigningMethod, key interface{}, claims Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() Claims {
		return Claims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "admin",
				Issuer:    "weddingsalon",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	wrongRole := valid()
	wrongRole.Role = "customer"
	noExp := valid()
	noExp.ExpiresAt = nil
	wrongIssuer := valid()
	wrongIssuer.Issuer = "someone-else"

	tests := []struct {
		name  string
		token string
	}{
		{name: "wrong secret", token: sign(jwt.SigningMethodHS256, []byte("another-secret-another-secret-123"), valid())},
		{name: "wrong role", token: sign(jwt.SigningMethodHS256, []byte(testSecret), wrongRole)},
		{name: "no expiration", token: sign(jwt.SigningMethodHS256, []byte(testSecret), noExp)},
		{name: "wrong issuer", token: sign(jwt.SigningMethodHS256, []byte(testSecret), wrongIssuer)},
		{name: "none algorithm", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid())},
		{name: "garbage", token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err := svc.ParseToken(sign(jwt.SigningMethodHS256, []byte(testSecret), valid()))
	assert.NoError(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}
