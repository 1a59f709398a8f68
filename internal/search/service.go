package search

import (
	"context"
	"strings"

	"github.com/quizdesk/quizdesk-api/internal/config"
	"github.com/quizdesk/quizdesk-api/internal/quiz"
	"github.com/quizdesk/quizdesk-api/internal/subject"
	"github.com/quizdesk/quizdesk-api/internal/user"
	"gorm.io/gorm"
)

type Results struct {
	Users     []user.User       `json:"users"`
	Subjects  []subject.Subject `json:"subjects"`
	Quizzes   []quiz.Quiz       `json:"quizzes"`
	Questions []quiz.Question   `json:"questions"`
}

type Service interface {
	// Search matches the query against usernames and full names, subject
	// names, quiz remarks and question statements.
	Search(ctx context.Context, query string) (*Results, error)
}

type service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return &service{db: db}
}

func (s *service) Search(ctx context.Context, query string) (*Results, error) {
	log := config.WithContext(ctx)

	results := &Results{
		Users:     []user.User{},
		Subjects:  []subject.Subject{},
		Quizzes:   []quiz.Quiz{},
		Questions: []quiz.Question{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"

	if err := s.db.
		Where("LOWER(username) LIKE ? OR LOWER(full_name) LIKE ?", pattern, pattern).
		Find(&results.Users).Error; err != nil {
		log.WithError(err).Error("Failed to search users")
		return nil, err
	}
	if err := s.db.
		Where("LOWER(name) LIKE ?", pattern).
		Find(&results.Subjects).Error; err != nil {
		log.WithError(err).Error("Failed to search subjects")
		return nil, err
	}
	if err := s.db.
		Where("LOWER(remarks) LIKE ?", pattern).
		Find(&results.Quizzes).Error; err != nil {
		log.WithError(err).Error("Failed to search quizzes")
		return nil, err
	}
	if err := s.db.
		Where("LOWER(statement) LIKE ?", pattern).
		Find(&results.Questions).Error; err != nil {
		log.WithError(err).Error("Failed to search questions")
		return nil, err
	}

	return results, nil
}
