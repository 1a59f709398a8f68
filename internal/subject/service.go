package subject

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk-api/internal/config"
	"gorm.io/gorm"
)

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrSubjectExists   = errors.New("subject name already exists")
	ErrInvalidID       = errors.New("invalid id format")
	ErrInvalidInput    = errors.New("invalid input")
)

type Service interface {
	Create(ctx context.Context, dto CreateSubjectDTO) (*SubjectResponse, error)
	List(ctx context.Context) ([]SubjectResponse, error)
	Get(ctx context.Context, id string) (*SubjectResponse, error)
	Update(ctx context.Context, id string, dto UpdateSubjectDTO) (*SubjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func (s *service) Create(ctx context.Context, dto CreateSubjectDTO) (*SubjectResponse, error) {
	log := config.WithContext(ctx)

	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.repo.FindByName(dto.Name)
	if err != nil {
		log.WithError(err).Error("Failed to look up subject name")
		return nil, err
	}
	if existing != nil {
		return nil, ErrSubjectExists
	}

	subj := Subject{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
	}

	if err := s.repo.Create(&subj); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubjectExists
		}
		log.WithError(err).Error("Failed to create subject")
		return nil, err
	}

	log.WithField("subject_id", subj.ID).Info("Subject created")
	return toResponse(&subj), nil
}

func (s *service) List(ctx context.Context) ([]SubjectResponse, error) {
	subjects, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list subjects")
		return nil, err
	}

	responses := make([]SubjectResponse, 0, len(subjects))
	for i := range subjects {
		responses = append(responses, *toResponse(&subjects[i]))
	}
	return responses, nil
}

func (s *service) Get(ctx context.Context, id string) (*SubjectResponse, error) {
	subjectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	subj, err := s.repo.FindByID(subjectID)
	if err != nil {
		return nil, err
	}
	if subj == nil {
		return nil, ErrSubjectNotFound
	}
	return toResponse(subj), nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateSubjectDTO) (*SubjectResponse, error) {
	log := config.WithContext(ctx)

	subjectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	subj, err := s.repo.FindByID(subjectID)
	if err != nil {
		return nil, err
	}
	if subj == nil {
		return nil, ErrSubjectNotFound
	}

	if dto.Name != nil {
		other, err := s.repo.FindByName(*dto.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != subj.ID {
			return nil, ErrSubjectExists
		}
		subj.Name = *dto.Name
	}
	if dto.Description != nil {
		subj.Description = *dto.Description
	}

	if err := s.repo.Update(subj); err != nil {
		log.WithError(err).Error("Failed to update subject")
		return nil, err
	}

	log.WithField("subject_id", subj.ID).Info("Subject updated")
	return toResponse(subj), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	subjectID, err := parseID(id)
	if err != nil {
		return err
	}

	subj, err := s.repo.FindByID(subjectID)
	if err != nil {
		return err
	}
	if subj == nil {
		return ErrSubjectNotFound
	}

	if err := s.repo.DeleteCascade(subjectID); err != nil {
		log.WithError(err).Error("Failed to delete subject")
		return err
	}

	log.WithField("subject_id", subjectID).Info("Subject deleted with all chapters, quizzes, questions and scores")
	return nil
}
