package quiz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quizdesk/quizdesk-api/internal/attempt"
	"github.com/quizdesk/quizdesk-api/internal/chapter"
	"github.com/quizdesk/quizdesk-api/internal/quiz"
	"github.com/quizdesk/quizdesk-api/internal/subject"
	"github.com/quizdesk/quizdesk-api/internal/user"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&user.User{},
		&subject.Subject{},
		&chapter.Chapter{},
		&quiz.Quiz{},
		&quiz.Question{},
		&attempt.Score{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, db *gorm.DB) (quiz.QuizService, *chapter.Chapter) {
	t.Helper()

	subj := subject.Subject{ID: uuid.New(), Name: "Physics"}
	if err := db.Create(&subj).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	chap := chapter.Chapter{ID: uuid.New(), SubjectID: subj.ID, Name: "Optics"}
	if err := db.Create(&chap).Error; err != nil {
		t.Fatalf("seed chapter: %v", err)
	}

	svc := quiz.NewService(quiz.NewRepository(db), chapter.NewRepository(db))
	return svc, &chap
}

func mustCreateQuiz(t *testing.T, svc quiz.QuizService, chapterID uuid.UUID, date string) *quiz.QuizResponse {
	t.Helper()
	created, err := svc.Create(context.Background(), quiz.CreateQuizDTO{
		ChapterID:    chapterID.String(),
		DateOfQuiz:   date,
		TimeDuration: "00:30",
	})
	if err != nil {
		t.Fatalf("Create quiz: %v", err)
	}
	return created
}

func TestCreateQuizValidation(t *testing.T) {
	db := openTestDB(t)
	svc, chap := newTestService(t, db)
	ctx := context.Background()

	created := mustCreateQuiz(t, svc, chap.ID, "2026-09-15")
	if created.ChapterID != chap.ID {
		t.Errorf("chapter id = %s, want %s", created.ChapterID, chap.ID)
	}
	if got := created.DateOfQuiz.Format("2006-01-02"); got != "2026-09-15" {
		t.Errorf("date = %s, want 2026-09-15", got)
	}

	cases := []struct {
		name string
		dto  quiz.CreateQuizDTO
		want error
	}{
		{
			name: "bad date",
			dto:  quiz.CreateQuizDTO{ChapterID: chap.ID.String(), DateOfQuiz: "15/09/2026", TimeDuration: "00:30"},
			want: quiz.ErrInvalidInput,
		},
		{
			name: "bad duration",
			dto:  quiz.CreateQuizDTO{ChapterID: chap.ID.String(), DateOfQuiz: "2026-09-15", TimeDuration: "ninety"},
			want: quiz.ErrInvalidInput,
		},
		{
			name: "malformed chapter id",
			dto:  quiz.CreateQuizDTO{ChapterID: "nope", DateOfQuiz: "2026-09-15", TimeDuration: "00:30"},
			want: quiz.ErrInvalidInput,
		},
		{
			name: "unknown chapter",
			dto:  quiz.CreateQuizDTO{ChapterID: uuid.NewString(), DateOfQuiz: "2026-09-15", TimeDuration: "00:30"},
			want: quiz.ErrChapterNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.dto); !errors.Is(err, tc.want) {
				t.Errorf("Create error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAddQuestionValidation(t *testing.T) {
	db := openTestDB(t)
	svc, chap := newTestService(t, db)
	ctx := context.Background()

	created := mustCreateQuiz(t, svc, chap.ID, "2026-09-15")

	valid := quiz.QuestionDTO{
		Statement:     "What is the speed of light?",
		Options:       []string{"3e8 m/s", "3e6 m/s", "3e10 m/s", "none"},
		CorrectOption: 1,
	}

	first, err := svc.AddQuestion(ctx, created.ID.String(), valid)
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	if first.OrderIndex != 1 {
		t.Errorf("first question order index = %d, want 1", first.OrderIndex)
	}
	second, err := svc.AddQuestion(ctx, created.ID.String(), valid)
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	if second.OrderIndex != 2 {
		t.Errorf("second question order index = %d, want 2", second.OrderIndex)
	}

	cases := []struct {
		name string
		dto  quiz.QuestionDTO
	}{
		{"three options", quiz.QuestionDTO{Statement: "s", Options: []string{"a", "b", "c"}, CorrectOption: 1}},
		{"five options", quiz.QuestionDTO{Statement: "s", Options: []string{"a", "b", "c", "d", "e"}, CorrectOption: 1}},
		{"empty option", quiz.QuestionDTO{Statement: "s", Options: []string{"a", "", "c", "d"}, CorrectOption: 1}},
		{"correct option out of range", quiz.QuestionDTO{Statement: "s", Options: []string{"a", "b", "c", "d"}, CorrectOption: 5}},
		{"correct option zero", quiz.QuestionDTO{Statement: "s", Options: []string{"a", "b", "c", "d"}, CorrectOption: 0}},
		{"missing statement", quiz.QuestionDTO{Options: []string{"a", "b", "c", "d"}, CorrectOption: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddQuestion(ctx, created.ID.String(), tc.dto); !errors.Is(err, quiz.ErrInvalidInput) {
				t.Errorf("AddQuestion error = %v, want ErrInvalidInput", err)
			}
		})
	}

	if _, err := svc.AddQuestion(ctx, uuid.NewString(), valid); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Errorf("AddQuestion to unknown quiz error = %v, want ErrQuizNotFound", err)
	}
}

func TestStudentViewHidesAnswers(t *testing.T) {
	db := openTestDB(t)
	svc, chap := newTestService(t, db)
	ctx := context.Background()

	created := mustCreateQuiz(t, svc, chap.ID, "2026-09-15")
	if _, err := svc.AddQuestion(ctx, created.ID.String(), quiz.QuestionDTO{
		Statement:     "Pick B",
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: 2,
	}); err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}

	view, err := svc.GetStudentView(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetStudentView: %v", err)
	}
	if len(view.Questions) != 1 {
		t.Fatalf("view questions = %d, want 1", len(view.Questions))
	}
	q := view.Questions[0]
	if q.Statement != "Pick B" || len(q.Options) != 4 {
		t.Errorf("view question = %q with %d options, want statement and 4 options", q.Statement, len(q.Options))
	}

	full, err := svc.Get(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if full.Questions[0].CorrectOption != 2 {
		t.Errorf("admin view correct option = %d, want 2", full.Questions[0].CorrectOption)
	}
}

func TestDeleteQuizRemovesQuestionsAndScores(t *testing.T) {
	db := openTestDB(t)
	svc, chap := newTestService(t, db)
	ctx := context.Background()

	created := mustCreateQuiz(t, svc, chap.ID, "2026-09-15")
	if _, err := svc.AddQuestion(ctx, created.ID.String(), quiz.QuestionDTO{
		Statement:     "s",
		Options:       []string{"a", "b", "c", "d"},
		CorrectOption: 1,
	}); err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	score := attempt.Score{ID: uuid.New(), QuizID: created.ID, UserID: uuid.New(), TotalScored: 1}
	if err := db.Create(&score).Error; err != nil {
		t.Fatalf("seed score: %v", err)
	}

	if err := svc.Delete(ctx, created.ID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var questions, scores int64
	if err := db.Model(&quiz.Question{}).Count(&questions).Error; err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if err := db.Model(&attempt.Score{}).Count(&scores).Error; err != nil {
		t.Fatalf("count scores: %v", err)
	}
	if questions != 0 || scores != 0 {
		t.Errorf("after delete: %d questions, %d scores, want 0 and 0", questions, scores)
	}

	if _, err := svc.Get(ctx, created.ID.String()); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Errorf("Get after delete error = %v, want ErrQuizNotFound", err)
	}
}

func TestListUpcomingSkipsPastQuizzes(t *testing.T) {
	db := openTestDB(t)
	svc, chap := newTestService(t, db)
	ctx := context.Background()

	today := util.Today().Time
	past := mustCreateQuiz(t, svc, chap.ID, today.AddDate(0, 0, -7).Format("2006-01-02"))
	upcoming := mustCreateQuiz(t, svc, chap.ID, today.AddDate(0, 0, 7).Format("2006-01-02"))

	quizzes, err := svc.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("ListUpcoming: %v", err)
	}
	if len(quizzes) != 1 {
		t.Fatalf("upcoming quizzes = %d, want 1", len(quizzes))
	}
	if quizzes[0].ID != upcoming.ID {
		t.Errorf("upcoming quiz = %s, want %s (past quiz %s must be excluded)", quizzes[0].ID, upcoming.ID, past.ID)
	}
}

func TestUpdateQuizPartial(t *testing.T) {
	db := openTestDB(t)
	svc, chap := newTestService(t, db)
	ctx := context.Background()

	created := mustCreateQuiz(t, svc, chap.ID, "2026-09-15")

	remarks := "bring a calculator"
	updated, err := svc.Update(ctx, created.ID.String(), quiz.UpdateQuizDTO{Remarks: &remarks})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Remarks != remarks {
		t.Errorf("remarks = %q, want %q", updated.Remarks, remarks)
	}
	if got := updated.DateOfQuiz.Format("2006-01-02"); got != "2026-09-15" {
		t.Errorf("date changed to %s on partial update", got)
	}

	badDate := "next tuesday"
	if _, err := svc.Update(ctx, created.ID.String(), quiz.UpdateQuizDTO{DateOfQuiz: &badDate}); !errors.Is(err, quiz.ErrInvalidInput) {
		t.Errorf("Update bad date error = %v, want ErrInvalidInput", err)
	}

	if err := svc.RemoveQuestion(ctx, uuid.NewString()); !errors.Is(err, quiz.ErrQuestionNotFound) {
		t.Errorf("RemoveQuestion unknown error = %v, want ErrQuestionNotFound", err)
	}
}
