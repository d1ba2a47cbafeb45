package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/WeddingSalon-BookingService/internal/service/auth/models"
)

const (
	RoleAdmin = "admin"
	tokenType = "Bearer"
)

// Config учетные данные администратора и параметры токенов
type Config struct {
	Username     string
	PasswordHash string // bcrypt
	JWTSecret    string
	Issuer       string
	TokenTTL     time.Duration
}

// Claims JWT claims токена администратора
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service аутентификация администратора
type Service struct {
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

func NewService(cfg Config, logger Logger) *Service {
	return &Service{
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет учетные данные и выпускает HS256 токен.
// bcrypt выполняется и при неверном логине, чтобы время ответа не выдавало существование пользователя.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password))

	if !usernameOK || passwordErr != nil {
		if passwordErr != nil && !errors.Is(passwordErr, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Error("Login: bcrypt compare failed: %v", passwordErr)
		}
		s.logger.Warn("Login: invalid credentials for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now().UTC()
	exp := now.Add(s.cfg.TokenTTL)

	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.cfg.Username,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: issued admin token for username=%q, expires=%s", s.cfg.Username, exp.Format(time.RFC3339))

	return &models.TokenResponse{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresAt:   exp,
	}, nil
}

// ParseToken проверяет подпись, срок действия, издателя и роль
func (s *Service) ParseToken(raw string) (*models.Admin, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	}
	if s.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.cfg.Issuer))
	}

	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, opts...)
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Role != RoleAdmin || claims.Subject == "" {
		return nil, fmt.Errorf("%w: role %q is not allowed", ErrInvalidToken, claims.Role)
	}

	return &models.Admin{Username: claims.Subject, Role: claims.Role}, nil
}

// HashPassword bcrypt-хеш для конфигурации (команда hash-password)
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
