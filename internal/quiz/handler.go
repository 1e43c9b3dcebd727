package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/examportal/practice-lambda/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses:
// configuration problems are the caller's input, protocol violations
// are conflicts with the session state.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidCount), errors.Is(err, ErrNoQuestions):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNoActiveSession),
		errors.Is(err, ErrAlreadyAnswered),
		errors.Is(err, ErrNotAnswered),
		errors.Is(err, ErrSessionCompleted),
		errors.Is(err, ErrNotCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto StartQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para iniciar quiz")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.service.StartSession(r.Context(), dto)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, state)
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.CurrentQuestion(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, state)
}

func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto struct {
		Option string `json:"option"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para responder pergunta")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SubmitAnswer(r.Context(), dto.Option)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Advance(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Results(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Abandon(r.Context()); err != nil {
		writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
