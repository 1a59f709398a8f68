package attempt

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk-api/internal/quiz"
)

// Score is one graded attempt. The composite unique index enforces the
// single-attempt invariant at the storage layer, closing the race a plain
// read-then-write check would leave open.
type Score struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_scores_user_quiz" json:"quiz_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_scores_user_quiz" json:"user_id"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
	TotalScored int       `gorm:"not null" json:"total_scored"`

	Quiz *quiz.Quiz `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
}

func (Score) TableName() string { return "scores" }
