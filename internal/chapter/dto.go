package chapter

import (
	"time"

	"github.com/google/uuid"
)

type CreateChapterDTO struct {
	SubjectID   string `json:"subject_id" validate:"required,uuid4"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type UpdateChapterDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

type ChapterResponse struct {
	ID          uuid.UUID `json:"id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(c *Chapter) *ChapterResponse {
	return &ChapterResponse{
		ID:          c.ID,
		SubjectID:   c.SubjectID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
