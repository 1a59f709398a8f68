package subject

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(s *Subject) error
	FindAll() ([]Subject, error)
	FindByID(id uuid.UUID) (*Subject, error)
	FindByName(name string) (*Subject, error)
	Update(s *Subject) error
	DeleteCascade(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(s *Subject) error {
	return r.db.Create(s).Error
}

// FindAll returns subjects in stable enumeration order; summary views rely
// on this ordering.
func (r *repository) FindAll() ([]Subject, error) {
	var subjects []Subject
	if err := r.db.Order("created_at ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Subject, error) {
	var s Subject
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByName(name string) (*Subject, error) {
	var s Subject
	if err := r.db.First(&s, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(s *Subject) error {
	return r.db.Save(s).Error
}

// DeleteCascade removes the subject and everything below it: chapters,
// quizzes, questions and scores. A score must never outlive its quiz.
func (r *repository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM scores WHERE quiz_id IN (
				SELECT q.id FROM quizzes q
				JOIN chapters c ON q.chapter_id = c.id
				WHERE c.subject_id = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM questions WHERE quiz_id IN (
				SELECT q.id FROM quizzes q
				JOIN chapters c ON q.chapter_id = c.id
				WHERE c.subject_id = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM quizzes WHERE chapter_id IN (
				SELECT id FROM chapters WHERE subject_id = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM chapters WHERE subject_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&Subject{}, "id = ?", id).Error
	})
}
