package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(id uuid.UUID) (*Quiz, error)
	ListByChapter(chapterID uuid.UUID) ([]Quiz, error)
	ListUpcoming(from time.Time) ([]Quiz, error)
	Update(q *Quiz) error
	DeleteCascade(id uuid.UUID) error

	AddQuestion(question *Question) error
	GetQuestion(id uuid.UUID) (*Question, error)
	UpdateQuestion(question *Question) error
	DeleteQuestion(id uuid.UUID) error
	CountQuestions(quizID uuid.UUID) (int64, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *quizRepository) GetByID(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) ListByChapter(chapterID uuid.UUID) ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.
		Where("chapter_id = ?", chapterID).
		Order("date_of_quiz ASC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListUpcoming(from time.Time) ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.
		Where("date_of_quiz >= ?", from).
		Order("date_of_quiz ASC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Update(q *Quiz) error {
	return r.db.Model(&Quiz{}).Where("id = ?", q.ID).Updates(map[string]interface{}{
		"date_of_quiz":  q.DateOfQuiz,
		"time_duration": q.TimeDuration,
		"remarks":       q.Remarks,
	}).Error
}

// DeleteCascade removes the quiz together with its questions and scores, so
// no score ever outlives its quiz.
func (r *quizRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM scores WHERE quiz_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM questions WHERE quiz_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&Quiz{}, "id = ?", id).Error
	})
}

func (r *quizRepository) AddQuestion(question *Question) error {
	return r.db.Create(question).Error
}

func (r *quizRepository) GetQuestion(id uuid.UUID) (*Question, error) {
	var q Question
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) UpdateQuestion(question *Question) error {
	return r.db.Save(question).Error
}

func (r *quizRepository) DeleteQuestion(id uuid.UUID) error {
	return r.db.Delete(&Question{}, "id = ?", id).Error
}

func (r *quizRepository) CountQuestions(quizID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&Question{}).Where("quiz_id = ?", quizID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
