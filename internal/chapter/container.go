package chapter

import (
	"github.com/quizdesk/quizdesk-api/internal/subject"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, subjectRepo subject.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, subjectRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
