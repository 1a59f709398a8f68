package attempt

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type subjectAggRow struct {
	SubjectID uuid.UUID
	Value     int
}

type userAggRow struct {
	UserID  uuid.UUID
	Quizzes int
	Total   int
}

type ScoreRepository interface {
	FindByUserAndQuiz(userID, quizID uuid.UUID) (*Score, error)
	ListByUser(userID uuid.UUID) ([]Score, error)

	// SumBySubjectForUser returns, per subject with at least one matching
	// score, the summed total_scored of the user's attempts under it.
	SumBySubjectForUser(userID uuid.UUID) (map[uuid.UUID]int, error)
	// DistinctUsersBySubject returns, per subject, the number of distinct
	// users with any score under it.
	DistinctUsersBySubject() (map[uuid.UUID]int, error)
	// AggregateByUser returns distinct quizzes attempted and summed score
	// per user.
	AggregateByUser() (map[uuid.UUID]userAggRow, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) FindByUserAndQuiz(userID, quizID uuid.UUID) (*Score, error) {
	var s Score
	if err := r.db.First(&s, "user_id = ? AND quiz_id = ?", userID, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *scoreRepository) ListByUser(userID uuid.UUID) ([]Score, error) {
	var scores []Score
	if err := r.db.
		Preload("Quiz").
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *scoreRepository) SumBySubjectForUser(userID uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []subjectAggRow
	err := r.db.Raw(`
		SELECT c.subject_id AS subject_id, COALESCE(SUM(s.total_scored), 0) AS value
		FROM scores s
		JOIN quizzes q ON s.quiz_id = q.id
		JOIN chapters c ON q.chapter_id = c.id
		WHERE s.user_id = ?
		GROUP BY c.subject_id`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		totals[row.SubjectID] = row.Value
	}
	return totals, nil
}

func (r *scoreRepository) DistinctUsersBySubject() (map[uuid.UUID]int, error) {
	var rows []subjectAggRow
	err := r.db.Raw(`
		SELECT c.subject_id AS subject_id, COUNT(DISTINCT s.user_id) AS value
		FROM scores s
		JOIN quizzes q ON s.quiz_id = q.id
		JOIN chapters c ON q.chapter_id = c.id
		GROUP BY c.subject_id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.SubjectID] = row.Value
	}
	return counts, nil
}

func (r *scoreRepository) AggregateByUser() (map[uuid.UUID]userAggRow, error) {
	var rows []userAggRow
	err := r.db.Raw(`
		SELECT user_id, COUNT(DISTINCT quiz_id) AS quizzes, COALESCE(SUM(total_scored), 0) AS total
		FROM scores
		GROUP BY user_id`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	aggs := make(map[uuid.UUID]userAggRow, len(rows))
	for _, row := range rows {
		aggs[row.UserID] = row
	}
	return aggs, nil
}
