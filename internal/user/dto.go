package user

import (
	"time"

	"github.com/google/uuid"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
)

type RegisterDTO struct {
	Username      string         `json:"username" validate:"required,min=3,max=120"`
	Password      string         `json:"password" validate:"required,min=6"`
	FullName      string         `json:"full_name" validate:"required"`
	Qualification string         `json:"qualification"`
	DOB           *util.DateOnly `json:"dob"`
}

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID            uuid.UUID      `json:"id"`
	Username      string         `json:"username"`
	FullName      string         `json:"full_name"`
	Qualification string         `json:"qualification,omitempty"`
	DOB           *util.DateOnly `json:"dob,omitempty"`
	IsAdmin       bool           `json:"is_admin"`
	CreatedAt     time.Time      `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toResponse(u *User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		FullName:      u.FullName,
		Qualification: u.Qualification,
		DOB:           u.DOB,
		IsAdmin:       u.IsAdmin,
		CreatedAt:     u.CreatedAt,
	}
}
