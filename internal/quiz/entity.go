package quiz

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"chapter_id"`
	DateOfQuiz   util.DateOnly `gorm:"not null" json:"date_of_quiz"`
	TimeDuration string        `gorm:"not null" json:"time_duration"` // "HH:MM"
	Remarks      string        `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Quiz) TableName() string { return "quizzes" }

// Question stores exactly four option strings in Options; CorrectOption is a
// 1-based index into them.
type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Statement     string         `gorm:"type:text;not null" json:"statement"`
	Options       datatypes.JSON `gorm:"not null" json:"options"`
	CorrectOption int            `gorm:"not null" json:"correct_option"`
	OrderIndex    int            `gorm:"not null" json:"order_index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (Question) TableName() string { return "questions" }

// OptionList decodes the stored options column.
func (q *Question) OptionList() []string {
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil
	}
	return opts
}
