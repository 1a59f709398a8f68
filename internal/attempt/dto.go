package attempt

import (
	"time"

	"github.com/google/uuid"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
)

type SubmitAttemptDTO struct {
	// Answers maps question ID to the submitted option as sent by the
	// client; unparseable or missing entries count as unanswered.
	Answers map[string]string `json:"answers"`
}

type QuestionFeedback struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Statement     string    `json:"statement"`
	Options       []string  `json:"options"`
	Selected      int       `json:"selected"` // 0 = no answer
	CorrectOption int       `json:"correct_option"`
	Correct       bool      `json:"correct"`
}

type AttemptResult struct {
	ScoreID  uuid.UUID          `json:"score_id"`
	QuizID   uuid.UUID          `json:"quiz_id"`
	Score    int                `json:"score"`
	Total    int                `json:"total"`
	Feedback []QuestionFeedback `json:"feedback"`
}

type ScoreResponse struct {
	ID          uuid.UUID      `json:"id"`
	QuizID      uuid.UUID      `json:"quiz_id"`
	Timestamp   time.Time      `json:"timestamp"`
	TotalScored int            `json:"total_scored"`
	DateOfQuiz  *util.DateOnly `json:"date_of_quiz,omitempty"`
	QuizRemarks string         `json:"quiz_remarks,omitempty"`
}

type SubjectTotal struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	TotalScored int       `json:"total_scored"`
}

type SubjectAttempts struct {
	SubjectID     uuid.UUID `json:"subject_id"`
	SubjectName   string    `json:"subject_name"`
	DistinctUsers int       `json:"distinct_users"`
}

type UserSummary struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	TotalQuizzes int    `json:"total_quizzes"`
	TotalScore   int    `json:"total_score"`
}

type AdminSummaryResponse struct {
	SubjectAttempts []SubjectAttempts `json:"subject_attempts"`
	Users           []UserSummary     `json:"users"`
}
