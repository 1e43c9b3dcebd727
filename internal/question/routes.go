package question

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/bulk", h.BulkUpload)
	r.Get("/", h.List)
	r.Get("/categories", h.Categories)
	r.Delete("/{id}", h.Delete)

	return r
}
