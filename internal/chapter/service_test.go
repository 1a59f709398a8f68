package chapter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quizdesk/quizdesk-api/internal/attempt"
	"github.com/quizdesk/quizdesk-api/internal/chapter"
	"github.com/quizdesk/quizdesk-api/internal/quiz"
	"github.com/quizdesk/quizdesk-api/internal/subject"
	"github.com/quizdesk/quizdesk-api/internal/user"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
)

func newTestService(t *testing.T) (chapter.Service, *gorm.DB, *subject.Subject) {
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

	subj := subject.Subject{ID: uuid.New(), Name: "Physics"}
	if err := db.Create(&subj).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	svc := chapter.NewService(chapter.NewRepository(db), subject.NewRepository(db))
	return svc, db, &subj
}

func TestCreateRequiresExistingSubject(t *testing.T) {
	svc, _, subj := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chapter.CreateChapterDTO{
		SubjectID: subj.ID.String(),
		Name:      "Optics",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.SubjectID != subj.ID {
		t.Errorf("subject id = %s, want %s", created.SubjectID, subj.ID)
	}

	if _, err := svc.Create(ctx, chapter.CreateChapterDTO{
		SubjectID: uuid.NewString(),
		Name:      "Orphan",
	}); !errors.Is(err, chapter.ErrSubjectNotFound) {
		t.Errorf("Create under unknown subject error = %v, want ErrSubjectNotFound", err)
	}

	if _, err := svc.Create(ctx, chapter.CreateChapterDTO{
		SubjectID: subj.ID.String(),
	}); !errors.Is(err, chapter.ErrInvalidInput) {
		t.Errorf("Create without name error = %v, want ErrInvalidInput", err)
	}
}

func TestListBySubject(t *testing.T) {
	svc, _, subj := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Optics", "Waves"} {
		if _, err := svc.Create(ctx, chapter.CreateChapterDTO{
			SubjectID: subj.ID.String(),
			Name:      name,
		}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	chapters, err := svc.ListBySubject(ctx, subj.ID.String())
	if err != nil {
		t.Fatalf("ListBySubject: %v", err)
	}
	if len(chapters) != 2 {
		t.Errorf("chapters = %d, want 2", len(chapters))
	}

	if _, err := svc.ListBySubject(ctx, uuid.NewString()); !errors.Is(err, chapter.ErrSubjectNotFound) {
		t.Errorf("ListBySubject unknown subject error = %v, want ErrSubjectNotFound", err)
	}
}

func TestDeleteCascadesBelowChapter(t *testing.T) {
	svc, db, subj := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, chapter.CreateChapterDTO{
		SubjectID: subj.ID.String(),
		Name:      "Optics",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	qz := quiz.Quiz{ID: uuid.New(), ChapterID: created.ID, DateOfQuiz: util.Today(), TimeDuration: "00:20"}
	if err := db.Create(&qz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	question := quiz.Question{
		ID:            uuid.New(),
		QuizID:        qz.ID,
		Statement:     "question",
		Options:       datatypes.JSON([]byte(`["A","B","C","D"]`)),
		CorrectOption: 1,
		OrderIndex:    1,
	}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	score := attempt.Score{ID: uuid.New(), QuizID: qz.ID, UserID: uuid.New(), TotalScored: 1}
	if err := db.Create(&score).Error; err != nil {
		t.Fatalf("seed score: %v", err)
	}

	if err := svc.Delete(ctx, created.ID.String()); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	for _, model := range []interface{}{&quiz.Quiz{}, &quiz.Question{}, &attempt.Score{}, &chapter.Chapter{}} {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %T: %v", model, err)
		}
		if n != 0 {
			t.Errorf("%T rows after delete = %d, want 0", model, n)
		}
	}

	var subjects int64
	if err := db.Model(&subject.Subject{}).Count(&subjects).Error; err != nil {
		t.Fatalf("count subjects: %v", err)
	}
	if subjects != 1 {
		t.Errorf("subjects after chapter delete = %d, want 1", subjects)
	}
}
