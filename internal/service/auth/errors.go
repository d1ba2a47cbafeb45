package auth

import "errors"

var (
	// ErrInvalidCredentials неверный логин или пароль
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken токен не прошел проверку (подпись, срок, роль)
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal ошибка выпуска токена
	ErrInternal = errors.New("auth: internal error")
)
