package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/quizdesk/quizdesk-api/internal/attempt"
	"github.com/quizdesk/quizdesk-api/internal/auth"
	"github.com/quizdesk/quizdesk-api/internal/chapter"
	"github.com/quizdesk/quizdesk-api/internal/middlewares"
	"github.com/quizdesk/quizdesk-api/internal/quiz"
	"github.com/quizdesk/quizdesk-api/internal/search"
	"github.com/quizdesk/quizdesk-api/internal/subject"
	"github.com/quizdesk/quizdesk-api/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	SubjectHandler *subject.Handler
	ChapterHandler *chapter.Handler
	QuizHandler    *quiz.Handler
	AttemptHandler *attempt.Handler
	SearchHandler  *search.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/subjects", subject.Routes(cfg.SubjectHandler))
		r.Mount("/chapters", chapter.Routes(cfg.ChapterHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))
		r.Mount("/search", search.Routes(cfg.SearchHandler))

		r.Get("/subjects/{subjectID}/chapters", cfg.ChapterHandler.ListBySubject)
		r.Get("/chapters/{chapterID}/quizzes", cfg.QuizHandler.ListByChapter)
	})
	return r
}
