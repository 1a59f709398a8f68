package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quizdesk/quizdesk-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/upcoming", h.ListUpcoming)
	r.Get("/{id}/take", h.GetStudentView)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)

		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/questions", h.AddQuestion)
		r.Put("/questions/{questionID}", h.UpdateQuestion)
		r.Delete("/questions/{questionID}", h.RemoveQuestion)
	})

	return r
}
