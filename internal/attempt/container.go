package attempt

import (
	"github.com/quizdesk/quizdesk-api/internal/quiz"
	"github.com/quizdesk/quizdesk-api/internal/subject"
	"github.com/quizdesk/quizdesk-api/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    ScoreRepository
}

func NewContainer(db *gorm.DB, quizRepo quiz.QuizRepository, subjectRepo subject.Repository, userRepo user.UserRepository) *Container {
	repo := NewRepository(db)
	service := NewService(db, repo, quizRepo, subjectRepo, userRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
