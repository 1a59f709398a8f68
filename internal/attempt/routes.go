package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quizdesk/quizdesk-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/quiz/{quizID}", h.Submit)
	r.Get("/mine", h.ListMine)
	r.Get("/summary", h.Summary)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin)

		r.Get("/summary/admin", h.AdminSummary)
	})

	return r
}
