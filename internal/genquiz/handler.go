package genquiz

import (
	"encoding/json"
	"net/http"

	"github.com/examportal/practice-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}
