package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quizdesk/quizdesk-api/internal/auth"
	"github.com/quizdesk/quizdesk-api/internal/user"
)

func newTestService(t *testing.T) (user.UserService, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	auth.Init()

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

	if err := db.AutoMigrate(&user.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return user.NewService(user.NewRepository(db)), db
}

func TestRegister(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, user.RegisterDTO{
		Username: "alice",
		Password: "s3cret-pass",
		FullName: "Alice Example",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.Username != "alice" || created.IsAdmin {
		t.Errorf("created = %q admin=%v, want alice as student", created.Username, created.IsAdmin)
	}

	var stored user.User
	if err := db.First(&stored, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.PasswordHash == "s3cret-pass" || stored.PasswordHash == "" {
		t.Error("password stored without hashing")
	}

	if _, err := svc.Register(ctx, user.RegisterDTO{
		Username: "alice",
		Password: "another-pass",
		FullName: "Alice Again",
	}); !errors.Is(err, user.ErrUsernameTaken) {
		t.Errorf("duplicate Register error = %v, want ErrUsernameTaken", err)
	}

	if _, err := svc.Register(ctx, user.RegisterDTO{
		Username: "bob",
		Password: "short",
		FullName: "Bob Example",
	}); !errors.Is(err, user.ErrInvalidInput) {
		t.Errorf("weak password Register error = %v, want ErrInvalidInput", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, user.RegisterDTO{
		Username: "alice",
		Password: "s3cret-pass",
		FullName: "Alice Example",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Authenticate(ctx, user.LoginDTO{Username: "alice", Password: "s3cret-pass"})
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token on successful login")
	}

	claims, err := auth.ValidateJWT(resp.Token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.Role != auth.RoleStudent {
		t.Errorf("token role = %q, want %q", claims.Role, auth.RoleStudent)
	}
	if claims.UserID != resp.User.ID.String() {
		t.Errorf("token user id = %q, want %q", claims.UserID, resp.User.ID)
	}

	if _, err := svc.Authenticate(ctx, user.LoginDTO{Username: "alice", Password: "wrong"}); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate(ctx, user.LoginDTO{Username: "nobody", Password: "whatever"}); !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("unknown user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, uuid.NewString()); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("GetByID unknown error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.GetByID(ctx, "not-a-uuid"); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("GetByID malformed error = %v, want ErrUserNotFound", err)
	}

	created, err := svc.Register(ctx, user.RegisterDTO{
		Username: "carol",
		Password: "s3cret-pass",
		FullName: "Carol Example",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Username != "carol" {
		t.Errorf("username = %q, want carol", got.Username)
	}
}
