package quiz

import (
	"time"

	"github.com/google/uuid"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
)

type CreateQuizDTO struct {
	ChapterID    string `json:"chapter_id" validate:"required,uuid4"`
	DateOfQuiz   string `json:"date_of_quiz" validate:"required,datetime=2006-01-02"`
	TimeDuration string `json:"time_duration" validate:"required,datetime=15:04"`
	Remarks      string `json:"remarks"`
}

type UpdateQuizDTO struct {
	DateOfQuiz   *string `json:"date_of_quiz" validate:"omitempty,datetime=2006-01-02"`
	TimeDuration *string `json:"time_duration" validate:"omitempty,datetime=15:04"`
	Remarks      *string `json:"remarks"`
}

type QuestionDTO struct {
	Statement     string   `json:"statement" validate:"required"`
	Options       []string `json:"options" validate:"required,len=4,dive,required"`
	CorrectOption int      `json:"correct_option" validate:"required,min=1,max=4"`
}

type QuizResponse struct {
	ID           uuid.UUID     `json:"id"`
	ChapterID    uuid.UUID     `json:"chapter_id"`
	DateOfQuiz   util.DateOnly `json:"date_of_quiz"`
	TimeDuration string        `json:"time_duration"`
	Remarks      string        `json:"remarks,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// QuestionView is the student-safe projection: no correct option.
type QuestionView struct {
	ID         uuid.UUID `json:"id"`
	Statement  string    `json:"statement"`
	Options    []string  `json:"options"`
	OrderIndex int       `json:"order_index"`
}

type QuizWithQuestionsDTO struct {
	Quiz      QuizResponse `json:"quiz"`
	Questions []Question   `json:"questions"`
}

type StudentQuizDTO struct {
	Quiz      QuizResponse   `json:"quiz"`
	Questions []QuestionView `json:"questions"`
}

func toQuizResponse(q *Quiz) QuizResponse {
	return QuizResponse{
		ID:           q.ID,
		ChapterID:    q.ChapterID,
		DateOfQuiz:   q.DateOfQuiz,
		TimeDuration: q.TimeDuration,
		Remarks:      q.Remarks,
		CreatedAt:    q.CreatedAt,
	}
}

func toQuestionView(q *Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Statement:  q.Statement,
		Options:    q.OptionList(),
		OrderIndex: q.OrderIndex,
	}
}
