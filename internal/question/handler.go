package question

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/examportal/practice-lambda/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrQuestionNotFound):
		http.Error(w, "question not found", http.StatusNotFound)
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrOptionCount),
		errors.Is(err, ErrCorrectNotInSet),
		errors.Is(err, ErrInvalidDifficulty),
		errors.Is(err, ErrEmptyBatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para criar pergunta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	q, err := h.service.CreateQuestion(r.Context(), dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) BulkUpload(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto BulkUploadDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para importação")
		http.Error(w, "invalid JSON format, expected { questions: [...] }", http.StatusBadRequest)
		return
	}

	count, err := h.service.BulkCreate(r.Context(), dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]int{
		"imported": count,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	f := Filters{
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}

	questions, err := h.service.ListQuestions(r.Context(), f)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, categories)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "question id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
