package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/auth"
	"github.com/m04kA/WeddingSalon-BookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверное имя пользователя или пароль"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch {
	case req.Username == "":
		handlers.RespondValidationError(w, domain.NewValidationError("username", "is required"))
		return
	case req.Password == "":
		handlers.RespondValidationError(w, domain.NewValidationError("password", "is required"))
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials: username=%s", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to issue token: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Token issued: username=%s", req.Username)
	handlers.RespondJSON(w, http.StatusOK, token)
}
