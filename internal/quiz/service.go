package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk-api/internal/chapter"
	"github.com/quizdesk/quizdesk-api/internal/config"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
)

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrChapterNotFound  = chapter.ErrChapterNotFound
	ErrInvalidID        = errors.New("invalid id format")
	ErrInvalidInput     = errors.New("invalid input")
)

type QuizService interface {
	Create(ctx context.Context, dto CreateQuizDTO) (*QuizResponse, error)
	Get(ctx context.Context, id string) (*QuizWithQuestionsDTO, error)
	GetStudentView(ctx context.Context, id string) (*StudentQuizDTO, error)
	ListByChapter(ctx context.Context, chapterID string) ([]QuizResponse, error)
	ListUpcoming(ctx context.Context) ([]QuizResponse, error)
	Update(ctx context.Context, id string, dto UpdateQuizDTO) (*QuizResponse, error)
	Delete(ctx context.Context, id string) error

	AddQuestion(ctx context.Context, quizID string, dto QuestionDTO) (*Question, error)
	UpdateQuestion(ctx context.Context, questionID string, dto QuestionDTO) (*Question, error)
	RemoveQuestion(ctx context.Context, questionID string) error
}

type quizService struct {
	repo        QuizRepository
	chapterRepo chapter.Repository
}

func NewService(repo QuizRepository, chapterRepo chapter.Repository) QuizService {
	return &quizService{repo: repo, chapterRepo: chapterRepo}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func parseQuizDate(s string) (util.DateOnly, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return util.DateOnly{}, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrInvalidInput)
	}
	return util.NewDateOnly(t), nil
}

func (s *quizService) Create(ctx context.Context, dto CreateQuizDTO) (*QuizResponse, error) {
	log := config.WithContext(ctx)

	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	chapterID, err := parseID(dto.ChapterID)
	if err != nil {
		return nil, err
	}
	chap, err := s.chapterRepo.FindByID(chapterID)
	if err != nil {
		return nil, err
	}
	if chap == nil {
		return nil, ErrChapterNotFound
	}

	date, err := parseQuizDate(dto.DateOfQuiz)
	if err != nil {
		return nil, err
	}

	q := Quiz{
		ID:           uuid.New(),
		ChapterID:    chapterID,
		DateOfQuiz:   date,
		TimeDuration: dto.TimeDuration,
		Remarks:      dto.Remarks,
	}

	if err := s.repo.Create(&q); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	log.WithField("quiz_id", q.ID).Info("Quiz created")
	resp := toQuizResponse(&q)
	return &resp, nil
}

func (s *quizService) Get(ctx context.Context, id string) (*QuizWithQuestionsDTO, error) {
	quizID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	q, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	return &QuizWithQuestionsDTO{
		Quiz:      toQuizResponse(q),
		Questions: q.Questions,
	}, nil
}

// GetStudentView returns the quiz with answer keys stripped.
func (s *quizService) GetStudentView(ctx context.Context, id string) (*StudentQuizDTO, error) {
	quizID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	q, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	views := make([]QuestionView, 0, len(q.Questions))
	for i := range q.Questions {
		views = append(views, toQuestionView(&q.Questions[i]))
	}

	return &StudentQuizDTO{
		Quiz:      toQuizResponse(q),
		Questions: views,
	}, nil
}

func (s *quizService) ListByChapter(ctx context.Context, chapterID string) ([]QuizResponse, error) {
	id, err := parseID(chapterID)
	if err != nil {
		return nil, err
	}

	chap, err := s.chapterRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if chap == nil {
		return nil, ErrChapterNotFound
	}

	quizzes, err := s.repo.ListByChapter(id)
	if err != nil {
		return nil, err
	}

	responses := make([]QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		responses = append(responses, toQuizResponse(&quizzes[i]))
	}
	return responses, nil
}

// ListUpcoming returns quizzes scheduled today or later, for the student
// dashboard.
func (s *quizService) ListUpcoming(ctx context.Context) ([]QuizResponse, error) {
	quizzes, err := s.repo.ListUpcoming(util.Today().Time)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list upcoming quizzes")
		return nil, err
	}

	responses := make([]QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		responses = append(responses, toQuizResponse(&quizzes[i]))
	}
	return responses, nil
}

func (s *quizService) Update(ctx context.Context, id string, dto UpdateQuizDTO) (*QuizResponse, error) {
	log := config.WithContext(ctx)

	quizID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	q, err := s.repo.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	if dto.DateOfQuiz != nil {
		date, err := parseQuizDate(*dto.DateOfQuiz)
		if err != nil {
			return nil, err
		}
		q.DateOfQuiz = date
	}
	if dto.TimeDuration != nil {
		q.TimeDuration = *dto.TimeDuration
	}
	if dto.Remarks != nil {
		q.Remarks = *dto.Remarks
	}

	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to update quiz")
		return nil, err
	}

	log.WithField("quiz_id", q.ID).Info("Quiz updated")
	resp := toQuizResponse(q)
	return &resp, nil
}

func (s *quizService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	quizID, err := parseID(id)
	if err != nil {
		return err
	}

	q, err := s.repo.GetByID(quizID)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrQuizNotFound
	}

	if err := s.repo.DeleteCascade(quizID); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.WithField("quiz_id", quizID).Info("Quiz deleted with all questions and scores")
	return nil
}

func (s *quizService) AddQuestion(ctx context.Context, quizID string, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	id, err := parseID(quizID)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	q, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	count, err := s.repo.CountQuestions(id)
	if err != nil {
		return nil, err
	}

	options, err := json.Marshal(dto.Options)
	if err != nil {
		return nil, err
	}

	question := Question{
		ID:            uuid.New(),
		QuizID:        id,
		Statement:     dto.Statement,
		Options:       options,
		CorrectOption: dto.CorrectOption,
		OrderIndex:    int(count) + 1,
	}

	if err := s.repo.AddQuestion(&question); err != nil {
		log.WithError(err).Error("Failed to add question")
		return nil, err
	}

	log.WithField("question_id", question.ID).Info("Question added")
	return &question, nil
}

func (s *quizService) UpdateQuestion(ctx context.Context, questionID string, dto QuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	id, err := parseID(questionID)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	question, err := s.repo.GetQuestion(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	options, err := json.Marshal(dto.Options)
	if err != nil {
		return nil, err
	}

	question.Statement = dto.Statement
	question.Options = options
	question.CorrectOption = dto.CorrectOption

	if err := s.repo.UpdateQuestion(question); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, err
	}

	log.WithField("question_id", question.ID).Info("Question updated")
	return question, nil
}

func (s *quizService) RemoveQuestion(ctx context.Context, questionID string) error {
	log := config.WithContext(ctx)

	id, err := parseID(questionID)
	if err != nil {
		return err
	}

	question, err := s.repo.GetQuestion(id)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}

	if err := s.repo.DeleteQuestion(id); err != nil {
		log.WithError(err).Error("Failed to remove question")
		return err
	}

	log.WithField("question_id", id).Info("Question removed")
	return nil
}
