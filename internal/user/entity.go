package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/quizdesk/quizdesk-api/internal/auth"
	util "github.com/quizdesk/quizdesk-api/internal/utils"
)

type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username      string         `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	FullName      string         `gorm:"not null" json:"full_name"`
	Qualification string         `json:"qualification,omitempty"`
	DOB           *util.DateOnly `json:"dob,omitempty"`
	IsAdmin       bool           `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) Role() string {
	if u.IsAdmin {
		return auth.RoleAdmin
	}
	return auth.RoleStudent
}
