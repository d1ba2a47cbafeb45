package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/auth/models"
)

type contextKey string

const adminContextKey contextKey = "admin"

const (
	msgMissingToken = "требуется авторизация администратора"
	msgInvalidToken = "недействительный или просроченный токен"
)

// AdminAuth пропускает запрос только с валидным заголовком Authorization: Bearer <token>
func AdminAuth(parser TokenParser, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			admin, err := parser.ParseToken(raw)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetAdmin администратор, прошедший AdminAuth
func GetAdmin(ctx context.Context) (*models.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey).(*models.Admin)
	return admin, ok && admin != nil
}

// AdminName имя администратора для логов, пустая строка вне защищенных маршрутов
func AdminName(ctx context.Context) string {
	if admin, ok := GetAdmin(ctx); ok {
		return admin.Username
	}
	return ""
}
