package container

import (
	"context"
	"log"
	"os"

	"github.com/quizdesk/quizdesk-api/internal/attempt"
	"github.com/quizdesk/quizdesk-api/internal/auth"
	"github.com/quizdesk/quizdesk-api/internal/chapter"
	"github.com/quizdesk/quizdesk-api/internal/config"
	"github.com/quizdesk/quizdesk-api/internal/quiz"
	"github.com/quizdesk/quizdesk-api/internal/search"
	"github.com/quizdesk/quizdesk-api/internal/subject"
	"github.com/quizdesk/quizdesk-api/internal/user"
)

type Container struct {
	UserContainer    *user.UserContainer
	SubjectContainer *subject.Container
	ChapterContainer *chapter.Container
	QuizContainer    *quiz.QuizContainer
	AttemptContainer *attempt.Container
	SearchContainer  *search.Container
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn,
		&user.User{},
		&subject.Subject{},
		&chapter.Chapter{},
		&quiz.Quiz{},
		&quiz.Question{},
		&attempt.Score{},
	); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	subjectContainer := subject.NewContainer(config.DB)
	chapterContainer := chapter.NewContainer(config.DB, subjectContainer.Repo)
	quizContainer := quiz.NewQuizContainer(config.DB, chapterContainer.Repo)
	attemptContainer := attempt.NewContainer(config.DB, quizContainer.Repo, subjectContainer.Repo, userContainer.Repo)
	searchContainer := search.NewContainer(config.DB)

	return &Container{
		UserContainer:    userContainer,
		SubjectContainer: subjectContainer,
		ChapterContainer: chapterContainer,
		QuizContainer:    quizContainer,
		AttemptContainer: attemptContainer,
		SearchContainer:  searchContainer,
	}
}
