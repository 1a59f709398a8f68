package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk-api/internal/auth"
	"github.com/quizdesk/quizdesk-api/internal/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
)

const tokenTTL = 24 * time.Hour

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Authenticate(ctx context.Context, dto LoginDTO) (*LoginResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := s.repo.FindByUsername(dto.Username)
	if err != nil {
		log.WithError(err).Error("Failed to look up username")
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	u := User{
		ID:            uuid.New(),
		Username:      dto.Username,
		PasswordHash:  string(hash),
		FullName:      dto.FullName,
		Qualification: dto.Qualification,
		DOB:           dto.DOB,
	}

	if err := s.repo.Create(&u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	resp := toResponse(&u)
	return &resp, nil
}

func (s *userService) Authenticate(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	if err := config.Validate(dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	u, err := s.repo.FindByUsername(dto.Username)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Role(), tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User authenticated")
	return &LoginResponse{Token: token, User: toResponse(u)}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	resp := toResponse(u)
	return &resp, nil
}
