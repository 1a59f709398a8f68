package chapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk-api/internal/config"
	"github.com/quizdesk/quizdesk-api/internal/subject"
)

var (
	ErrChapterNotFound = errors.New("chapter not found")
	ErrSubjectNotFound = subject.ErrSubjectNotFound
	ErrInvalidID       = errors.New("invalid id format")
	ErrInvalidInput    = errors.New("invalid input")
)

type Service interface {
	Create(ctx context.Context, dto CreateChapterDTO) (*ChapterResponse, error)
	ListBySubject(ctx context.Context, subjectID string) ([]ChapterResponse, error)
	Get(ctx context.Context, id string) (*ChapterResponse, error)
	Update(ctx context.Context, id string, dto UpdateChapterDTO) (*ChapterResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	subjectRepo subject.Repository
}

func NewService(repo Repository, subjectRepo subject.Repository) Service {
	return &service{repo: repo, subjectRepo: subjectRepo}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func (s *service) Create(ctx context.Context, dto CreateChapterDTO) (*ChapterResponse, error) {
	log := config.WithContext(ctx)

	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	subjectID, err := parseID(dto.SubjectID)
	if err != nil {
		return nil, err
	}
	subj, err := s.subjectRepo.FindByID(subjectID)
	if err != nil {
		return nil, err
	}
	if subj == nil {
		return nil, ErrSubjectNotFound
	}

	c := Chapter{
		ID:          uuid.New(),
		SubjectID:   subjectID,
		Name:        dto.Name,
		Description: dto.Description,
	}

	if err := s.repo.Create(&c); err != nil {
		log.WithError(err).Error("Failed to create chapter")
		return nil, err
	}

	log.WithField("chapter_id", c.ID).Info("Chapter created")
	return toResponse(&c), nil
}

func (s *service) ListBySubject(ctx context.Context, subjectID string) ([]ChapterResponse, error) {
	id, err := parseID(subjectID)
	if err != nil {
		return nil, err
	}

	subj, err := s.subjectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if subj == nil {
		return nil, ErrSubjectNotFound
	}

	chapters, err := s.repo.FindBySubjectID(id)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list chapters")
		return nil, err
	}

	responses := make([]ChapterResponse, 0, len(chapters))
	for i := range chapters {
		responses = append(responses, *toResponse(&chapters[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id string) (*ChapterResponse, error) {
	chapterID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(chapterID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrChapterNotFound
	}
	return toResponse(c), nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateChapterDTO) (*ChapterResponse, error) {
	log := config.WithContext(ctx)

	chapterID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c, err := s.repo.FindByID(chapterID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrChapterNotFound
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}

	if err := s.repo.Update(c); err != nil {
		log.WithError(err).Error("Failed to update chapter")
		return nil, err
	}

	log.WithField("chapter_id", c.ID).Info("Chapter updated")
	return toResponse(c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	chapterID, err := parseID(id)
	if err != nil {
		return err
	}

	c, err := s.repo.FindByID(chapterID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrChapterNotFound
	}

	if err := s.repo.DeleteCascade(chapterID); err != nil {
		log.WithError(err).Error("Failed to delete chapter")
		return err
	}

	log.WithField("chapter_id", chapterID).Info("Chapter deleted with all quizzes, questions and scores")
	return nil
}
