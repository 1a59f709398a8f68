package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quizdesk/quizdesk-api/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(service QuizService) *Handler {
	return &Handler{service: service}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrQuizNotFound):
		http.Error(w, "quiz not found", http.StatusNotFound)
	case errors.Is(err, ErrQuestionNotFound):
		http.Error(w, "question not found", http.StatusNotFound)
	case errors.Is(err, ErrChapterNotFound):
		http.Error(w, "chapter not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to create quiz")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

// Get serves the full quiz, including answer keys. Admin only.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// GetStudentView serves the quiz without correct options, for quiz-taking.
func (h *Handler) GetStudentView(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetStudentView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

// ListByChapter handles GET /chapters/{chapterID}/quizzes.
func (h *Handler) ListByChapter(w http.ResponseWriter, r *http.Request) {
	responses, err := h.service.ListByChapter(r.Context(), chi.URLParam(r, "chapterID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	responses, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list upcoming quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to update quiz")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Warn("Failed to delete quiz")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.AddQuestion(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to add question")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, question)
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto QuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.service.UpdateQuestion(r.Context(), chi.URLParam(r, "questionID"), dto)
	if err != nil {
		log.WithError(err).Warn("Failed to update question")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, question)
}

func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.RemoveQuestion(r.Context(), chi.URLParam(r, "questionID")); err != nil {
		log.WithError(err).Warn("Failed to remove question")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}
