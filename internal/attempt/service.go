package attempt

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk-api/internal/config"
	"github.com/quizdesk/quizdesk-api/internal/quiz"
	"github.com/quizdesk/quizdesk-api/internal/subject"
	"github.com/quizdesk/quizdesk-api/internal/user"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrQuizNotFound     = quiz.ErrQuizNotFound
	ErrAlreadyAttempted = errors.New("quiz already attempted")
	ErrInvalidID        = errors.New("invalid id format")
)

type Service interface {
	// Submit grades one attempt and persists its Score. It is deliberately
	// not idempotent: a second submission for the same (user, quiz) fails
	// with ErrAlreadyAttempted and leaves no side effect.
	Submit(ctx context.Context, quizID string, userID uuid.UUID, answers map[string]string) (*AttemptResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ScoreResponse, error)
	PerSubjectTotals(ctx context.Context, userID uuid.UUID) ([]SubjectTotal, error)
	AdminSummary(ctx context.Context) (*AdminSummaryResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        ScoreRepository
	quizRepo    quiz.QuizRepository
	subjectRepo subject.Repository
	userRepo    user.UserRepository
}

func NewService(db *gorm.DB, repo ScoreRepository, quizRepo quiz.QuizRepository, subjectRepo subject.Repository, userRepo user.UserRepository) Service {
	return &service{
		db:          db,
		repo:        repo,
		quizRepo:    quizRepo,
		subjectRepo: subjectRepo,
		userRepo:    userRepo,
	}
}

// parseAnswer interprets a raw submitted value. Anything that is not an
// integer counts as "no answer" (0), which never matches a correct option.
func parseAnswer(raw string, ok bool) int {
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func (s *service) Submit(ctx context.Context, quizID string, userID uuid.UUID, answers map[string]string) (*AttemptResult, error) {
	log := config.WithContext(ctx)

	id, err := uuid.Parse(quizID)
	if err != nil {
		return nil, ErrInvalidID
	}

	qz, err := s.quizRepo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz for grading")
		return nil, err
	}
	if qz == nil {
		return nil, ErrQuizNotFound
	}

	result := AttemptResult{
		QuizID:   qz.ID,
		Total:    len(qz.Questions),
		Feedback: make([]QuestionFeedback, 0, len(qz.Questions)),
	}

	for i := range qz.Questions {
		q := &qz.Questions[i]
		raw, ok := answers[q.ID.String()]
		selected := parseAnswer(raw, ok)
		correct := selected == q.CorrectOption

		if correct {
			result.Score++
		}
		result.Feedback = append(result.Feedback, QuestionFeedback{
			QuestionID:    q.ID,
			Statement:     q.Statement,
			Options:       q.OptionList(),
			Selected:      selected,
			CorrectOption: q.CorrectOption,
			Correct:       correct,
		})
	}

	// Check-and-insert runs in one transaction; the unique index on
	// (user_id, quiz_id) backstops concurrent submissions.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing Score
		err := tx.Where("user_id = ? AND quiz_id = ?", userID, qz.ID).Take(&existing).Error
		if err == nil {
			return ErrAlreadyAttempted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		score := Score{
			ID:          uuid.New(),
			QuizID:      qz.ID,
			UserID:      userID,
			TotalScored: result.Score,
		}
		if err := tx.Create(&score).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyAttempted
			}
			return err
		}

		result.ScoreID = score.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyAttempted) {
			return nil, ErrAlreadyAttempted
		}
		log.WithError(err).Error("Failed to persist score")
		return nil, err
	}

	log.WithField("quiz_id", qz.ID).
		WithField("user_id", userID).
		WithField("score", result.Score).
		Info("Attempt graded")
	return &result, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]ScoreResponse, error) {
	scores, err := s.repo.ListByUser(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list scores")
		return nil, err
	}

	responses := make([]ScoreResponse, 0, len(scores))
	for i := range scores {
		sc := &scores[i]
		resp := ScoreResponse{
			ID:          sc.ID,
			QuizID:      sc.QuizID,
			Timestamp:   sc.Timestamp,
			TotalScored: sc.TotalScored,
		}
		if sc.Quiz != nil {
			date := util.NewDateOnly(sc.Quiz.DateOfQuiz.Time)
			resp.DateOfQuiz = &date
			resp.QuizRemarks = sc.Quiz.Remarks
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// PerSubjectTotals walks every subject in enumeration order; subjects the
// user never attempted appear with total 0, never omitted.
func (s *service) PerSubjectTotals(ctx context.Context, userID uuid.UUID) ([]SubjectTotal, error) {
	subjects, err := s.subjectRepo.FindAll()
	if err != nil {
		return nil, err
	}

	totals, err := s.repo.SumBySubjectForUser(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to aggregate scores per subject")
		return nil, err
	}

	result := make([]SubjectTotal, 0, len(subjects))
	for _, subj := range subjects {
		result = append(result, SubjectTotal{
			SubjectID:   subj.ID,
			SubjectName: subj.Name,
			TotalScored: totals[subj.ID],
		})
	}
	return result, nil
}

func (s *service) AdminSummary(ctx context.Context) (*AdminSummaryResponse, error) {
	log := config.WithContext(ctx)

	subjects, err := s.subjectRepo.FindAll()
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.DistinctUsersBySubject()
	if err != nil {
		log.WithError(err).Error("Failed to aggregate attempts per subject")
		return nil, err
	}

	subjectAttempts := make([]SubjectAttempts, 0, len(subjects))
	for _, subj := range subjects {
		subjectAttempts = append(subjectAttempts, SubjectAttempts{
			SubjectID:     subj.ID,
			SubjectName:   subj.Name,
			DistinctUsers: counts[subj.ID],
		})
	}

	students, err := s.userRepo.ListNonAdmins()
	if err != nil {
		return nil, err
	}
	aggs, err := s.repo.AggregateByUser()
	if err != nil {
		log.WithError(err).Error("Failed to aggregate scores per user")
		return nil, err
	}

	users := make([]UserSummary, 0, len(students))
	for i := range students {
		u := &students[i]
		agg := aggs[u.ID]
		users = append(users, UserSummary{
			Username:     u.Username,
			FullName:     u.FullName,
			TotalQuizzes: agg.Quizzes,
			TotalScore:   agg.Total,
		})
	}

	return &AdminSummaryResponse{
		SubjectAttempts: subjectAttempts,
		Users:           users,
	}, nil
}
