package search

import (
	"net/http"

	"github.com/quizdesk/quizdesk-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	results, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.WithError(err).Error("Search failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, results)
}
