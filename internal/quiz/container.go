package quiz

import (
	"github.com/quizdesk/quizdesk-api/internal/chapter"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
	Repo    QuizRepository
}

func NewQuizContainer(db *gorm.DB, chapterRepo chapter.Repository) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, chapterRepo)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
