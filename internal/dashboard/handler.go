package dashboard

import (
	"errors"
	"net/http"

	"github.com/examportal/practice-lambda/internal/config"
)

type Handler struct {
	service DashboardService
}

func NewHandler(s DashboardService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to load dashboard stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}
