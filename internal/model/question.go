package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionStatus string

const (
	QuestionActive   QuestionStatus = "ACTIVE"
	QuestionInactive QuestionStatus = "INACTIVE"
)

func (s QuestionStatus) Valid() bool {
	return s == QuestionActive || s == QuestionInactive
}

type Question struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Category  string         `json:"category" gorm:"not null;index"`
	Status    QuestionStatus `json:"status" gorm:"type:varchar(16);not null;default:ACTIVE;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.Status == "" {
		q.Status = QuestionActive
	}
	return nil
}
