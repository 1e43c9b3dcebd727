package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/start", h.Start)
	r.Get("/current", h.Current)
	r.Post("/answer", h.Answer)
	r.Post("/next", h.Next)
	r.Get("/results", h.Results)
	r.Delete("/", h.Abandon)

	return r
}
