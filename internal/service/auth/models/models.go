package models

import "time"

// LoginRequest запрос входа администратора
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse выданный токен доступа
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Admin данные администратора из проверенного токена
type Admin struct {
	Username string
	Role     string
}
