package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
)

const (
	msgRoot     = "Wedding Salon API"
	pingTimeout = 2 * time.Second
)

type Handler struct {
	storage Pinger
	logger  Logger
}

func NewHandler(storage Pinger, logger Logger) *Handler {
	return &Handler{
		storage: storage,
		logger:  logger,
	}
}

// Root GET /api/
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, handlers.MessageResponse{Message: msgRoot})
}

// Health GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Error("GET /health - Storage ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Storage: "down"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Storage: "up"})
}
