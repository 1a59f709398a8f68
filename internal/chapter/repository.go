package chapter

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Chapter) error
	FindBySubjectID(subjectID uuid.UUID) ([]Chapter, error)
	FindByID(id uuid.UUID) (*Chapter, error)
	Update(c *Chapter) error
	DeleteCascade(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Chapter) error {
	return r.db.Create(c).Error
}

func (r *repository) FindBySubjectID(subjectID uuid.UUID) ([]Chapter, error) {
	var chapters []Chapter
	if err := r.db.Where("subject_id = ?", subjectID).Order("created_at ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Chapter, error) {
	var c Chapter
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(c *Chapter) error {
	return r.db.Save(c).Error
}

// DeleteCascade removes the chapter with its quizzes, questions and scores.
func (r *repository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM scores WHERE quiz_id IN (
				SELECT id FROM quizzes WHERE chapter_id = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM questions WHERE quiz_id IN (
				SELECT id FROM quizzes WHERE chapter_id = ?)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM quizzes WHERE chapter_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&Chapter{}, "id = ?", id).Error
	})
}
